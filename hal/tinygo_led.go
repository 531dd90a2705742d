//go:build tinygo

package hal

import (
	"machine"
)

type pwmDevice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// Fast enough that dimmed eyelid levels read as brightness, not flicker.
const ledCarrierHz = 5000

// pwmLED drives one eyelid LED through an RP2040 PWM channel.
type pwmLED struct {
	pwm pwmDevice
	ch  uint8
	top uint32
}

// newBoardLED sets up PWM on a pin. Falls back to plain on/off GPIO
// when the pin has no usable PWM slice.
func newBoardLED(pin machine.Pin) LED {
	pwm := pwmForPin(pin)
	if pwm == nil {
		return newDigitalLED(pin)
	}
	if err := pwm.Configure(machine.PWMConfig{Period: 1e9 / ledCarrierHz}); err != nil {
		return newDigitalLED(pin)
	}
	ch, err := pwm.Channel(pin)
	if err != nil {
		return newDigitalLED(pin)
	}
	led := &pwmLED{pwm: pwm, ch: ch, top: pwm.Top()}
	led.Apply(LEDCommand{Mode: LEDOff})
	return led
}

func pwmForPin(pin machine.Pin) pwmDevice {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil
	}
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return nil
	}
}

func (l *pwmLED) Apply(cmd LEDCommand) {
	switch cmd.Mode {
	case LEDOn:
		l.pwm.Set(l.ch, l.top)
	case LEDLevel:
		l.pwm.Set(l.ch, uint32(cmd.Level)*l.top/255)
	default:
		l.pwm.Set(l.ch, 0)
	}
}

// digitalLED is the no-PWM fallback. Levels at or above half read as on.
type digitalLED struct {
	pin machine.Pin
}

func newDigitalLED(pin machine.Pin) *digitalLED {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &digitalLED{pin: pin}
}

func (l *digitalLED) Apply(cmd LEDCommand) {
	switch cmd.Mode {
	case LEDOn:
		l.pin.High()
	case LEDLevel:
		if cmd.Level >= 128 {
			l.pin.High()
		} else {
			l.pin.Low()
		}
	default:
		l.pin.Low()
	}
}
