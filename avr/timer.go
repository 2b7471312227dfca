package avr

import "strconv"

// Timer is one of the six timer/counters. Timer0 and Timer2 are 8-bit,
// the rest 16-bit with three compare channels and an input-capture register.
type Timer uint8

const (
	Timer0 Timer = iota
	Timer1
	Timer2
	Timer3
	Timer4
	Timer5

	numTimers
)

// Channel is an output-compare channel of a timer.
type Channel uint8

const (
	ChannelA Channel = iota
	ChannelB
	ChannelC
)

func (c Channel) String() string { return string("ABC"[c%3]) }

// Bit positions in TCCRnA / TCCRnB, shared by every timer.
const (
	WGM0 = 0 // TCCRnA
	WGM1 = 1 // TCCRnA
	WGM2 = 3 // TCCRnB
	WGM3 = 4 // TCCRnB (16-bit timers only)

	CS0 = 0
	CS1 = 1
	CS2 = 2
)

// COM1 is the bit position of COMnX1 in TCCRnA, the bit that connects the
// compare unit to its pin in non-inverting mode.
func (c Channel) COM1() uint8 { return 7 - 2*uint8(c) }

type timerRegs struct {
	ctrlA, ctrlB, ctrlC Register
	icr                 Register
	ocr                 [3]Register
}

const noReg = numRegisters

var timers = [numTimers]timerRegs{
	Timer0: {TCCR0A, TCCR0B, noReg, noReg, [3]Register{OCR0A, OCR0B, noReg}},
	Timer1: {TCCR1A, TCCR1B, TCCR1C, ICR1, [3]Register{OCR1A, OCR1B, OCR1C}},
	Timer2: {TCCR2A, TCCR2B, noReg, noReg, [3]Register{OCR2A, OCR2B, noReg}},
	Timer3: {TCCR3A, TCCR3B, TCCR3C, ICR3, [3]Register{OCR3A, OCR3B, OCR3C}},
	Timer4: {TCCR4A, TCCR4B, TCCR4C, ICR4, [3]Register{OCR4A, OCR4B, OCR4C}},
	Timer5: {TCCR5A, TCCR5B, TCCR5C, ICR5, [3]Register{OCR5A, OCR5B, OCR5C}},
}

func (t Timer) Valid() bool { return t < numTimers }

func (t Timer) String() string { return "TIMER" + strconv.Itoa(int(t)) }

// Wide reports a 16-bit counter.
func (t Timer) Wide() bool { return t.Valid() && t != Timer0 && t != Timer2 }

func (t Timer) ControlA() Register { return timers[t].ctrlA }
func (t Timer) ControlB() Register { return timers[t].ctrlB }

// Compare returns OCRnX for channel c.
func (t Timer) Compare(c Channel) (Register, bool) {
	if !t.Valid() || c > ChannelC {
		return 0, false
	}
	r := timers[t].ocr[c]
	return r, r != noReg
}

// InputCapture returns ICRn; 8-bit timers have none.
func (t Timer) InputCapture() (Register, bool) {
	if !t.Valid() {
		return 0, false
	}
	r := timers[t].icr
	return r, r != noReg
}

// WaveformMasks splits a WGM mode number (0..15) into its TCCRnA and
// TCCRnB bits.
func WaveformMasks(mode uint8) (a, b uint8) {
	a = mode & 0x3 << WGM0
	b = (mode>>2)&1<<WGM2 | (mode>>3)&1<<WGM3
	return a, b
}

// ClockSelect returns the CSn2:0 value for a prescale divisor. Timer2 has
// its own divisor ladder.
func (t Timer) ClockSelect(prescale int) (uint8, bool) {
	ladder := []int{1, 8, 64, 256, 1024}
	if t == Timer2 {
		ladder = []int{1, 8, 32, 64, 128, 256, 1024}
	}
	for i, d := range ladder {
		if d == prescale {
			return uint8(i + 1), true
		}
	}
	return 0, false
}

type compareOutput struct {
	timer Timer
	ch    Channel
}

// Output-compare pins. PB7 is also OC1C; the Arduino core drives it from
// Timer0 and so does this table.
var compareOutputs = map[Pin]compareOutput{
	D2:  {Timer3, ChannelB},
	D3:  {Timer3, ChannelC},
	D4:  {Timer0, ChannelB},
	D5:  {Timer3, ChannelA},
	D6:  {Timer4, ChannelA},
	D7:  {Timer4, ChannelB},
	D8:  {Timer4, ChannelC},
	D9:  {Timer2, ChannelB},
	D10: {Timer2, ChannelA},
	D11: {Timer1, ChannelA},
	D12: {Timer1, ChannelB},
	D13: {Timer0, ChannelA},
	D44: {Timer5, ChannelC},
	D45: {Timer5, ChannelB},
	D46: {Timer5, ChannelA},
}

// OutputCompare reports the timer and channel physically wired to p.
func OutputCompare(p Pin) (Timer, Channel, bool) {
	o, ok := compareOutputs[p]
	return o.timer, o.ch, ok
}

// PWMPins lists every pin with an output-compare unit, in header order.
func PWMPins() []Pin {
	out := make([]Pin, 0, len(compareOutputs))
	for _, p := range digital {
		if _, ok := compareOutputs[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
