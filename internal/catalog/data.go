package catalog

import (
	"github.com/honestpc/honestpc-backend/pkg/enums"
	"github.com/honestpc/honestpc-backend/pkg/types"
)

// Parts catalog. Prices are whole rupees, sourced from the merch team's
// current vendor sheet.
var (
	cpuI3 = types.Component{
		ID:       "cpu_i3",
		Type:     enums.ComponentTypeCPU,
		Name:     "Intel Core i3-12100F",
		Price:    8500,
		IsLocked: true,
		Specs:    "4 Cores, 4.3 GHz",
		Image:    "https://m.media-amazon.com/images/I/5103Xi7yQgL._AC_SL1000_.jpg",
	}
	cpuI5 = types.Component{
		ID:       "cpu_i5",
		Type:     enums.ComponentTypeCPU,
		Name:     "Intel Core i5-12400F",
		Price:    12500,
		IsLocked: true,
		Specs:    "6 Cores, 4.4 GHz",
		Image:    "https://m.media-amazon.com/images/I/5103Xi7yQgL._AC_SL1000_.jpg",
	}
	cpuI7 = types.Component{
		ID:       "cpu_i7",
		Type:     enums.ComponentTypeCPU,
		Name:     "Intel Core i7-12700F",
		Price:    24000,
		IsLocked: true,
		Specs:    "12 Cores, 4.9 GHz",
		Image:    "https://m.media-amazon.com/images/I/5103Xi7yQgL._AC_SL1000_.jpg",
	}

	moboH610 = types.Component{
		ID:       "mobo_h610",
		Type:     enums.ComponentTypeMotherboard,
		Name:     "MSI PRO H610M-E DDR4",
		Price:    6500,
		IsLocked: true,
		Specs:    "Reliable VRMs, PCIe 4.0",
		Image:    "https://m.media-amazon.com/images/I/81d6-e+cDrL._AC_SL1500_.jpg",
	}
	moboB660 = types.Component{
		ID:       "mobo_b660",
		Type:     enums.ComponentTypeMotherboard,
		Name:     "ASUS Prime B660M-A WiFi",
		Price:    11500,
		IsLocked: true,
		Specs:    "Heavy Duty, WiFi 6",
		Image:    "https://m.media-amazon.com/images/I/81fC9h+0FdL._AC_SL1500_.jpg",
	}

	gpuArc380 = types.Component{
		ID:       "gpu_arc380",
		Type:     enums.ComponentTypeGPU,
		Name:     "Intel Arc A380 6GB",
		Price:    10500,
		IsLocked: true,
		Specs:    "Great for AV1 Encoding",
		Image:    "https://m.media-amazon.com/images/I/71X-x+j+V+L._AC_SL1500_.jpg",
	}
	gpuRX6600 = types.Component{
		ID:       "gpu_rx6600",
		Type:     enums.ComponentTypeGPU,
		Name:     "AMD Radeon RX 6600 8GB",
		Price:    19500,
		IsLocked: true,
		Specs:    "1080p Gaming King",
		Image:    "https://m.media-amazon.com/images/I/81u6E5c+-ZL._AC_SL1500_.jpg",
	}
	gpuRTX3060 = types.Component{
		ID:       "gpu_rtx3060",
		Type:     enums.ComponentTypeGPU,
		Name:     "NVIDIA RTX 3060 12GB",
		Price:    25000,
		IsLocked: true,
		Specs:    "Ray Tracing, DLSS",
		Image:    "https://m.media-amazon.com/images/I/71518+-2xML._AC_SL1500_.jpg",
	}

	ram8GB = types.Component{
		ID:    "ram_8gb",
		Type:  enums.ComponentTypeRAM,
		Name:  "8GB Adata XPG Gammix D30",
		Price: 1800,
		Specs: "3200MHz CL16",
		Image: "https://m.media-amazon.com/images/I/61+-3e+4-CL._AC_SL1000_.jpg",
	}
	ram16GB = types.Component{
		ID:    "ram_16gb",
		Type:  enums.ComponentTypeRAM,
		Name:  "16GB (8x2) Adata XPG Gammix D30",
		Price: 3400,
		Specs: "3200MHz CL16 Dual Channel",
		Image: "https://m.media-amazon.com/images/I/61+-3e+4-CL._AC_SL1000_.jpg",
	}
	ram32GB = types.Component{
		ID:    "ram_32gb",
		Type:  enums.ComponentTypeRAM,
		Name:  "32GB (16x2) Corsair Vengeance LPX",
		Price: 6500,
		Specs: "3200MHz CL16 Dual Channel",
		Image: "https://m.media-amazon.com/images/I/71c6wP+xTdL._AC_SL1500_.jpg",
	}

	ssd500GB = types.Component{
		ID:    "ssd_500gb",
		Type:  enums.ComponentTypeStorage,
		Name:  "500GB WD Blue SN570 NVMe",
		Price: 3200,
		Specs: "3500MB/s Read",
		Image: "https://m.media-amazon.com/images/I/71F7X2B2jFL._AC_SL1500_.jpg",
	}
	ssd1TB = types.Component{
		ID:    "ssd_1tb",
		Type:  enums.ComponentTypeStorage,
		Name:  "1TB WD Blue SN570 NVMe",
		Price: 5500,
		Specs: "3500MB/s Read",
		Image: "https://m.media-amazon.com/images/I/71F7X2B2jFL._AC_SL1500_.jpg",
	}
	ssd2TB = types.Component{
		ID:    "ssd_2tb",
		Type:  enums.ComponentTypeStorage,
		Name:  "2TB Samsung 970 EVO Plus",
		Price: 11000,
		Specs: "Top Reliability",
		Image: "https://m.media-amazon.com/images/I/81A+M+2+RzL._AC_SL1500_.jpg",
	}

	psu550W = types.Component{
		ID:       "psu_550w",
		Type:     enums.ComponentTypePSU,
		Name:     "Deepcool PK550D 550W",
		Price:    3200,
		IsLocked: true,
		Specs:    "80+ Bronze, Flat Cables",
		Image:    "https://m.media-amazon.com/images/I/61kM2z+iQVL._AC_SL1000_.jpg",
	}
	psu650W = types.Component{
		ID:       "psu_650w",
		Type:     enums.ComponentTypePSU,
		Name:     "Corsair CX650M",
		Price:    5200,
		IsLocked: true,
		Specs:    "80+ Bronze, Semi-Modular",
		Image:    "https://m.media-amazon.com/images/I/71u9+5q8G+L._AC_SL1500_.jpg",
	}

	caseBasic = types.Component{
		ID:       "case_basic",
		Type:     enums.ComponentTypeCase,
		Name:     "Ant Esports ICE-110",
		Price:    2800,
		IsLocked: true,
		Specs:    "High Airflow Mesh",
		Image:    "https://m.media-amazon.com/images/I/718X+1+tJdL._AC_SL1500_.jpg",
	}
	casePrem = types.Component{
		ID:       "case_prem",
		Type:     enums.ComponentTypeCase,
		Name:     "Lian Li Lancool 215",
		Price:    6500,
		IsLocked: true,
		Specs:    "2x200mm ARGB Fans",
		Image:    "https://m.media-amazon.com/images/I/81e5b10+OEL._AC_SL1500_.jpg",
	}

	coolStock = types.Component{
		ID:       "cool_stock",
		Type:     enums.ComponentTypeCooling,
		Name:     "Intel Stock Laminar RM1",
		Price:    0,
		IsLocked: true,
		Specs:    "Basic Cooling",
		Image:    "https://m.media-amazon.com/images/I/51D37+zXwGL._AC_SL1000_.jpg",
	}
	coolAir = types.Component{
		ID:       "cool_air",
		Type:     enums.ComponentTypeCooling,
		Name:     "Deepcool AK400",
		Price:    2400,
		IsLocked: true,
		Specs:    "High Performance Air",
		Image:    "https://m.media-amazon.com/images/I/61t-y7QW8CL._AC_SL1000_.jpg",
	}
)

// buildTiers is the storefront lineup, cheapest first.
var buildTiers = []Tier{
	{
		ID:          "entry_student",
		Name:        "Student Essentials",
		RangeLabel:  "Under ₹40,000",
		MinBudget:   0,
		MaxBudget:   40000,
		Description: "Perfect for coding, web browsing, online classes, and light media editing.",
		BaseBuild: types.ComponentList{
			cpuI3, moboH610, ram8GB, ssd500GB, gpuArc380, psu550W, caseBasic, coolStock,
		},
		Upgrades: map[enums.ComponentType][]types.Component{
			enums.ComponentTypeRAM:     {ram8GB, ram16GB},
			enums.ComponentTypeStorage: {ssd500GB, ssd1TB},
		},
	},
	{
		ID:          "mid_gamer",
		Name:        "Balanced Gamer",
		RangeLabel:  "₹40k - ₹70k",
		MinBudget:   40000,
		MaxBudget:   70000,
		Description: "High-FPS 1080p gaming, moderate video editing, and heavy multitasking.",
		BaseBuild: types.ComponentList{
			cpuI5, moboH610, ram16GB, ssd1TB, gpuRX6600, psu550W, caseBasic, coolAir,
		},
		Upgrades: map[enums.ComponentType][]types.Component{
			enums.ComponentTypeRAM:     {ram16GB, ram32GB},
			enums.ComponentTypeStorage: {ssd500GB, ssd1TB, ssd2TB},
		},
	},
	{
		ID:          "pro_creator",
		Name:        "Pro Workstation",
		RangeLabel:  "₹70k+",
		MinBudget:   70000,
		MaxBudget:   200000,
		Description: "4K video editing, 3D rendering, and AAA gaming at high settings.",
		BaseBuild: types.ComponentList{
			cpuI7, moboB660, ram32GB, ssd1TB, gpuRTX3060, psu650W, casePrem, coolAir,
		},
		Upgrades: map[enums.ComponentType][]types.Component{
			enums.ComponentTypeRAM:     {ram32GB},
			enums.ComponentTypeStorage: {ssd1TB, ssd2TB},
		},
	},
}
