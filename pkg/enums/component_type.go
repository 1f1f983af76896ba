package enums

import "fmt"

// ComponentType identifies the slot a component occupies in a build.
type ComponentType string

const (
	ComponentTypeCPU         ComponentType = "CPU"
	ComponentTypeGPU         ComponentType = "GPU"
	ComponentTypeMotherboard ComponentType = "Motherboard"
	ComponentTypeRAM         ComponentType = "RAM"
	ComponentTypeStorage     ComponentType = "Storage"
	ComponentTypePSU         ComponentType = "Power Supply"
	ComponentTypeCase        ComponentType = "Case"
	ComponentTypeCooling     ComponentType = "Cooling"
	ComponentTypeOS          ComponentType = "Operating System"
)

var validComponentTypes = []ComponentType{
	ComponentTypeCPU,
	ComponentTypeGPU,
	ComponentTypeMotherboard,
	ComponentTypeRAM,
	ComponentTypeStorage,
	ComponentTypePSU,
	ComponentTypeCase,
	ComponentTypeCooling,
	ComponentTypeOS,
}

// ConfigurableTypes lists the slots end users may swap. Fixed set, not
// tier-defined.
var ConfigurableTypes = []ComponentType{
	ComponentTypeRAM,
	ComponentTypeStorage,
}

// String implements fmt.Stringer.
func (c ComponentType) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ComponentType.
func (c ComponentType) IsValid() bool {
	for _, candidate := range validComponentTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// IsConfigurable reports whether end users may swap this slot.
func (c ComponentType) IsConfigurable() bool {
	for _, candidate := range ConfigurableTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseComponentType converts raw input into a ComponentType.
func ParseComponentType(value string) (ComponentType, error) {
	for _, candidate := range validComponentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid component type %q", value)
}
