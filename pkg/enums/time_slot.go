package enums

import "fmt"

// TimeSlot is one of the fixed two-hour pickup windows.
type TimeSlot string

const (
	TimeSlot0810 TimeSlot = "08:00-10:00"
	TimeSlot1012 TimeSlot = "10:00-12:00"
	TimeSlot1214 TimeSlot = "12:00-14:00"
	TimeSlot1416 TimeSlot = "14:00-16:00"
	TimeSlot1618 TimeSlot = "16:00-18:00"
	TimeSlot1820 TimeSlot = "18:00-20:00"
)

var validTimeSlots = []TimeSlot{
	TimeSlot0810,
	TimeSlot1012,
	TimeSlot1214,
	TimeSlot1416,
	TimeSlot1618,
	TimeSlot1820,
}

var timeSlotLabels = map[TimeSlot]string{
	TimeSlot0810: "8 AM - 10 AM",
	TimeSlot1012: "10 AM - 12 PM",
	TimeSlot1214: "12 PM - 2 PM",
	TimeSlot1416: "2 PM - 4 PM",
	TimeSlot1618: "4 PM - 6 PM",
	TimeSlot1820: "6 PM - 8 PM",
}

// String implements fmt.Stringer.
func (t TimeSlot) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TimeSlot.
func (t TimeSlot) IsValid() bool {
	for _, candidate := range validTimeSlots {
		if candidate == t {
			return true
		}
	}
	return false
}

// Label returns the picker label for the slot.
func (t TimeSlot) Label() string {
	if label, ok := timeSlotLabels[t]; ok {
		return label
	}
	return string(t)
}

// TimeSlots returns the six pickup windows in day order.
func TimeSlots() []TimeSlot {
	out := make([]TimeSlot, len(validTimeSlots))
	copy(out, validTimeSlots)
	return out
}

// ParseTimeSlot converts raw input into a TimeSlot.
func ParseTimeSlot(value string) (TimeSlot, error) {
	for _, candidate := range validTimeSlots {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid time slot %q", value)
}
