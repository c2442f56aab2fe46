// This file is part of rcmapper.
//
// rcmapper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rcmapper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rcmapper.  If not, see <https://www.gnu.org/licenses/>.

package inputs_test

import (
	"testing"

	"github.com/rcmapper/rcmapper/behavior"
	"github.com/rcmapper/rcmapper/channels"
	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/inputs"
	"github.com/rcmapper/rcmapper/test"
	"github.com/rcmapper/rcmapper/userinput"
)

const keyA = userinput.Key('a')

func press(k userinput.Key) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: k, Down: true}
}

func release(k userinput.Key) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: k, Down: false}
}

func axis(v float64) userinput.EventGamepadAxis {
	return userinput.EventGamepadAxis{Axis: 1, ID: 0, Value: int16(v * userinput.AxisMax)}
}

func newInputs(t *testing.T, n int) (*inputs.Inputs, *userinput.Queue) {
	t.Helper()
	q := &userinput.Queue{}
	inp, err := inputs.NewInputs(n, q)
	if !test.ExpectSuccess(t, err) {
		t.FailNow()
	}
	return inp, q
}

func value(t *testing.T, inp *inputs.Inputs, channel int) int {
	t.Helper()
	v, err := inp.Bank().Value(channel)
	test.ExpectSuccess(t, err)
	return v
}

func TestNewInputs(t *testing.T) {
	_, err := inputs.NewInputs(0, nil)
	test.ExpectSuccess(t, curated.Has(err, channels.InvalidSize))

	inp, err := inputs.NewInputs(4, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, inp.Bank().Len(), 4)

	// no source. cycling is still possible
	test.ExpectSuccess(t, inp.Cycle())
	ch := inp.Channels()
	test.ExpectEquality(t, len(ch), 4)
	for _, v := range ch {
		test.ExpectEquality(t, v, channels.DefaultBias)
	}
}

func TestToggle(t *testing.T) {
	inp, q := newInputs(t, 4)
	test.ExpectSuccess(t, inp.Add(2, keyA, 400, behavior.Toggle, false))

	for _, expected := range []int{400, 0, 400} {
		q.Push(press(keyA), release(keyA))
		test.ExpectSuccess(t, inp.Cycle())
		test.ExpectEquality(t, value(t, inp, 2), expected)
		test.ExpectEquality(t, value(t, inp, 0), 0)
	}

	ch := inp.Channels()
	test.ExpectEquality(t, ch[2], 400+channels.DefaultBias)
	test.ExpectEquality(t, ch[0], channels.DefaultBias)
}

func TestAxisRising(t *testing.T) {
	inp, q := newInputs(t, 1)
	test.ExpectSuccess(t, inp.AddAxis(0, 1, 0, 100, behavior.DigitalRising, 0.5, behavior.Set))

	for i, s := range []float64{0.0, 0.3, 0.6, 0.9, 0.4} {
		q.Push(axis(s))
		test.ExpectSuccess(t, inp.Cycle())
		if i < 2 {
			test.ExpectEquality(t, value(t, inp, 0), 0)
		} else {
			test.ExpectEquality(t, value(t, inp, 0), 100)
		}
	}

	// the previous value is kept between cycles
	reg := inp.Registry()
	test.ExpectEquality(t, len(reg.Axis), 1)
	test.ExpectApproximate(t, reg.Axis[0].Previous(), 0.4, 0.001)
}

func TestAxisOtherDevice(t *testing.T) {
	inp, q := newInputs(t, 1)
	test.ExpectSuccess(t, inp.AddAxis(0, 1, 0, 500, behavior.DigitalNone, 0, behavior.Set))

	q.Push(userinput.EventGamepadAxis{Axis: 1, ID: 1, Value: userinput.AxisMax})
	q.Push(userinput.EventGamepadAxis{Axis: 0, ID: 0, Value: userinput.AxisMax})
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 0)

	q.Push(userinput.EventGamepadAxis{Axis: 1, ID: 0, Value: userinput.AxisMax})
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 500)
}

func TestModulo(t *testing.T) {
	inp, q := newInputs(t, 1)
	test.ExpectSuccess(t, inp.Bank().SetBound(0, channels.Modulo))
	test.ExpectSuccess(t, inp.Bank().SetLimit(0, 360))
	test.ExpectSuccess(t, inp.Add(0, keyA, 100, behavior.Increment, false))

	for range 4 {
		q.Push(press(keyA))
	}
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 40)
}

func TestClamp(t *testing.T) {
	inp, q := newInputs(t, 1)
	test.ExpectSuccess(t, inp.Add(0, keyA, 5000, behavior.Set, false))
	q.Push(press(keyA))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), channels.DefaultLimit)
}

func TestClear(t *testing.T) {
	inp, q := newInputs(t, 2)
	test.ExpectSuccess(t, inp.Add(0, keyA, 10, behavior.Set, false))
	test.ExpectSuccess(t, inp.Add(1, keyA, 20, behavior.Set, false))
	test.ExpectSuccess(t, inp.Bank().SetBias(1, 0))

	q.Push(press(keyA))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 10)
	test.ExpectEquality(t, value(t, inp, 1), 20)

	// clearing a single channel resets the value of that channel only
	test.ExpectSuccess(t, inp.ClearChannel(0))
	test.ExpectEquality(t, value(t, inp, 0), 0)
	test.ExpectEquality(t, value(t, inp, 1), 20)
	reg := inp.Registry()
	test.ExpectEquality(t, reg.Len(), 1)
	test.ExpectEquality(t, reg.KeyDown[0].Channel, 1)

	// the bias survives
	bias, _ := inp.Bank().Bias(1)
	test.ExpectEquality(t, bias, 0)

	// clearing everything leaves channel values alone
	inp.Clear()
	test.ExpectEquality(t, inp.Registry().Len(), 0)
	test.ExpectEquality(t, value(t, inp, 1), 20)

	q.Push(press(keyA))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 1), 20)

	err := inp.ClearChannel(2)
	test.ExpectSuccess(t, curated.Has(err, channels.ChannelOutOfRange))
}

func TestOrder(t *testing.T) {
	inp, q := newInputs(t, 1)
	test.ExpectSuccess(t, inp.Add(0, keyA, 10, behavior.Set, false))
	test.ExpectSuccess(t, inp.Add(0, keyA, 5, behavior.Increment, false))
	q.Push(press(keyA))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 15)

	inp.Clear()
	test.ExpectSuccess(t, inp.Add(0, keyA, 5, behavior.Increment, false))
	test.ExpectSuccess(t, inp.Add(0, keyA, 10, behavior.Set, false))
	q.Push(press(keyA))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 10)
}

func TestQuit(t *testing.T) {
	inp, q := newInputs(t, 1)
	test.ExpectSuccess(t, inp.Bank().SetLimit(0, 50))
	test.ExpectSuccess(t, inp.Add(0, keyA, 100, behavior.Increment, false))

	q.Push(press(keyA), userinput.EventQuit{}, press(keyA))
	test.ExpectFailure(t, inp.Cycle())

	// range policy is still applied in a quitting cycle
	test.ExpectEquality(t, value(t, inp, 0), 50)

	// the event after the quit is still pending
	test.ExpectEquality(t, q.Len(), 1)
	test.ExpectSuccess(t, inp.Cycle())
	test.ExpectEquality(t, q.Len(), 0)
}

func TestPerCycle(t *testing.T) {
	inp, _ := newInputs(t, 1)
	test.ExpectSuccess(t, inp.Add(0, userinput.KeyUnknown, 3, behavior.Increment, true))
	for range 5 {
		inp.Cycle()
	}
	test.ExpectEquality(t, value(t, inp, 0), 15)
	test.ExpectEquality(t, len(inp.Registry().Cycle), 1)
}

func TestButtons(t *testing.T) {
	inp, q := newInputs(t, 1)
	test.ExpectSuccess(t, inp.AddButton(0, 3, 1, 200, behavior.Set, false))
	test.ExpectSuccess(t, inp.AddButton(0, 3, 1, -200, behavior.Set, true))

	q.Push(userinput.EventGamepadButton{ID: 0, Button: 3, Down: true})
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 0)

	q.Push(userinput.EventGamepadButton{ID: 1, Button: 3, Down: true})
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 200)

	q.Push(userinput.EventGamepadButton{ID: 1, Button: 3, Down: false})
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), -200)
}

func TestOutOfRange(t *testing.T) {
	inp, _ := newInputs(t, 4)

	test.ExpectSuccess(t, curated.Has(inp.Add(4, keyA, 1, behavior.Set, false), channels.ChannelOutOfRange))
	test.ExpectFailure(t, inp.Add(-1, keyA, 1, behavior.Set, false))
	test.ExpectFailure(t, inp.AddButton(4, 0, 0, 1, behavior.Set, false))
	test.ExpectFailure(t, inp.AddAxis(4, 0, 0, 1, behavior.DigitalNone, 0, behavior.Set))
	test.ExpectFailure(t, inp.AddTap(4, userinput.KeyTrigger(keyA), 1))
	test.ExpectFailure(t, inp.AddHold(4, userinput.KeyTrigger(keyA), 1))
	test.ExpectFailure(t, inp.AddRelease(4, userinput.KeyTrigger(keyA), 1))
	test.ExpectFailure(t, inp.AddIncrement(4, userinput.KeyTrigger(keyA), 1))
	test.ExpectFailure(t, inp.AddToggle(4, userinput.KeyTrigger(keyA), 1))
	test.ExpectFailure(t, inp.AddToggleSymmetric(4, userinput.KeyTrigger(keyA), 1))

	// nothing was added
	test.ExpectEquality(t, inp.Registry().Len(), 0)
}

func TestInvalidTrigger(t *testing.T) {
	inp, _ := newInputs(t, 1)
	err := inp.AddTap(0, userinput.Trigger{}, 1)
	test.ExpectSuccess(t, curated.Is(err, inputs.InvalidTrigger))
	test.ExpectFailure(t, inp.AddHold(0, userinput.KeyTrigger(userinput.KeyUnknown), 1))
	test.ExpectFailure(t, inp.AddHold(0, userinput.AxisTrigger(0, 0, 1.5), 1))
	test.ExpectEquality(t, inp.Registry().Len(), 0)
}

func TestTap(t *testing.T) {
	inp, q := newInputs(t, 1)
	test.ExpectSuccess(t, inp.AddTap(0, userinput.KeyTrigger(keyA), 300))

	q.Push(press(keyA))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 300)

	// key is still held but the tap only lasts for one cycle
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 0)

	q.Push(release(keyA))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 0)
}

func TestHold(t *testing.T) {
	inp, q := newInputs(t, 1)
	test.ExpectSuccess(t, inp.AddHold(0, userinput.KeyTrigger(keyA), 300))

	q.Push(press(keyA))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 300)
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 300)

	q.Push(release(keyA))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 0)
}

func TestRelease(t *testing.T) {
	inp, q := newInputs(t, 1)
	test.ExpectSuccess(t, inp.AddRelease(0, userinput.ButtonTrigger(2, 0), 300))

	q.Push(userinput.EventGamepadButton{Button: 2, Down: true})
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 0)

	q.Push(userinput.EventGamepadButton{Button: 2, Down: false})
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 300)

	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 0)
}

func TestToggleSymmetric(t *testing.T) {
	inp, q := newInputs(t, 1)
	test.ExpectSuccess(t, inp.AddToggleSymmetric(0, userinput.KeyTrigger(keyA), 250))

	// channel is seeded before any cycle
	test.ExpectEquality(t, value(t, inp, 0), 250)

	for _, expected := range []int{-250, 250, -250} {
		q.Push(press(keyA))
		inp.Cycle()
		test.ExpectEquality(t, value(t, inp, 0), expected)
	}
}

func TestAxisHelpers(t *testing.T) {
	inp, q := newInputs(t, 2)
	test.ExpectSuccess(t, inp.AddHold(0, userinput.AxisTrigger(1, 0, 0.5), 300))
	test.ExpectSuccess(t, inp.AddIncrement(1, userinput.AxisTrigger(1, 0, -0.5), 10))

	q.Push(axis(0.8))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 300)
	test.ExpectEquality(t, value(t, inp, 1), 0)

	q.Push(axis(0.1))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 0)

	// pushing the axis in the negative direction presses the second trigger
	q.Push(axis(-0.8), axis(0.0), axis(-0.8))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 0)
	test.ExpectEquality(t, value(t, inp, 1), 20)
}

func TestAxisRelease(t *testing.T) {
	inp, q := newInputs(t, 1)
	test.ExpectSuccess(t, inp.AddRelease(0, userinput.AxisTrigger(1, 0, 0.5), 300))

	q.Push(axis(0.8))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 0)

	q.Push(axis(0.2))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 300)

	q.Push(axis(0.8))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 0)
}

func TestBind(t *testing.T) {
	inp, q := newInputs(t, 1)
	test.ExpectSuccess(t, inp.Bind(0, userinput.KeyTrigger(keyA), inputs.BindToggle, 100))

	q.Push(press(keyA))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 100)

	// binding again replaces the previous behaviors and resets the channel
	test.ExpectSuccess(t, inp.Bind(0, userinput.KeyTrigger(keyA), inputs.BindIncrement, 7))
	test.ExpectEquality(t, value(t, inp, 0), 0)
	test.ExpectEquality(t, inp.Registry().Len(), 1)

	q.Push(press(keyA), press(keyA))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 14)

	test.ExpectSuccess(t, inp.Bind(0, userinput.AxisTrigger(1, 0, 0.5), inputs.BindRaw, 500))
	reg := inp.Registry()
	test.ExpectEquality(t, len(reg.Axis), 1)
	test.ExpectEquality(t, reg.Axis[0].Digital, behavior.DigitalNone)

	q.Push(axis(1.0))
	inp.Cycle()
	test.ExpectEquality(t, value(t, inp, 0), 500)

	test.ExpectSuccess(t, inp.Bind(0, userinput.Trigger{}, inputs.BindNone, 0))
	test.ExpectEquality(t, inp.Registry().Len(), 0)
	test.ExpectEquality(t, value(t, inp, 0), 0)

	test.ExpectFailure(t, inp.Bind(1, userinput.KeyTrigger(keyA), inputs.BindTap, 1))
}

func TestBindModeNames(t *testing.T) {
	for _, n := range inputs.BindModeNames() {
		m, err := inputs.ParseBindMode(n)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, m.String(), n)
	}
	m, err := inputs.ParseBindMode(" Toggle_Symmetric ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, inputs.BindToggleSymmetric)

	_, err = inputs.ParseBindMode("sticky")
	test.ExpectSuccess(t, curated.Is(err, inputs.UnknownBindMode))
}

func TestConsumer(t *testing.T) {
	inp, q := newInputs(t, 2)
	test.ExpectSuccess(t, inp.Bank().SetBias(1, 1500))
	test.ExpectSuccess(t, inp.Add(1, keyA, 100, behavior.Set, false))

	var calls int
	var last []int
	inp.SetConsumer(func(ch []int) {
		calls++
		last = append(last[:0], ch...)
	})

	q.Push(press(keyA))
	inp.Cycle()
	inp.Cycle()
	test.ExpectEquality(t, calls, 2)
	test.ExpectEquality(t, len(last), 2)
	test.ExpectEquality(t, last[0], channels.DefaultBias)
	test.ExpectEquality(t, last[1], 1600)

	buf := make([]int, 2)
	out, running := inp.CycleInto(buf)
	test.ExpectSuccess(t, running)
	test.ExpectEquality(t, &out[0], &buf[0])
	test.ExpectEquality(t, out[1], 1600)
}

func TestHandleEvent(t *testing.T) {
	inp, _ := newInputs(t, 1)
	test.ExpectSuccess(t, inp.Add(0, keyA, 9, behavior.Set, false))
	test.ExpectFailure(t, inp.HandleEvent(press(keyA)))
	test.ExpectEquality(t, value(t, inp, 0), 9)
	test.ExpectSuccess(t, inp.HandleEvent(userinput.EventQuit{}))

	// unknown events are ignored
	test.ExpectFailure(t, inp.HandleEvent(struct{}{}))
}

func TestBindUnknownModeChangesNothing(t *testing.T) {
	inp, _ := newInputs(t, 1)
	test.ExpectSuccess(t, inp.Add(0, keyA, 10, behavior.Set, false))
	test.ExpectSuccess(t, inp.Bank().SetValue(0, 77))

	err := inp.Bind(0, userinput.KeyTrigger('b'), inputs.BindMode(42), 5)
	test.ExpectSuccess(t, curated.Is(err, inputs.UnknownBindMode))
	test.ExpectFailure(t, inp.Bind(0, userinput.KeyTrigger('b'), inputs.BindMode(-1), 5))

	// the existing behavior and value are untouched
	reg := inp.Registry()
	test.ExpectEquality(t, reg.Len(), 1)
	test.ExpectEquality(t, reg.KeyDown[0].Key, keyA)
	test.ExpectEquality(t, value(t, inp, 0), 77)
}

func TestInvalidBehavior(t *testing.T) {
	inp, _ := newInputs(t, 1)

	err := inp.AddAxis(0, 0, 0, 10, behavior.DigitalRising, 5.0, behavior.Set)
	test.ExpectSuccess(t, curated.Is(err, inputs.InvalidBehavior))
	test.ExpectSuccess(t, curated.Has(err, behavior.InvalidThreshold))

	test.ExpectFailure(t, inp.AddAxis(0, 0, 0, 10, behavior.DigitalFalling, -1.01, behavior.Set))
	test.ExpectSuccess(t, curated.Has(inp.AddAxis(0, 0, 0, 10, behavior.Digital(9), 0.5, behavior.Set), behavior.UnknownDigital))
	test.ExpectSuccess(t, curated.Has(inp.AddAxis(0, 0, 0, 10, behavior.DigitalNone, 0, behavior.Mode(9)), behavior.UnknownMode))
	test.ExpectSuccess(t, curated.Has(inp.Add(0, keyA, 1, behavior.Mode(-1), false), behavior.UnknownMode))
	test.ExpectSuccess(t, curated.Has(inp.Add(0, userinput.KeyUnknown, 1, behavior.Mode(4), false), behavior.UnknownMode))
	test.ExpectSuccess(t, curated.Has(inp.AddButton(0, 0, 0, 1, behavior.Mode(7), true), behavior.UnknownMode))
	test.ExpectEquality(t, inp.Registry().Len(), 0)

	// the limits of the threshold range are allowed
	test.ExpectSuccess(t, inp.AddAxis(0, 0, 0, 10, behavior.DigitalRising, 1.0, behavior.Set))
	test.ExpectSuccess(t, inp.AddAxis(0, 0, 0, 10, behavior.DigitalFalling, -1.0, behavior.Set))
	test.ExpectEquality(t, inp.Registry().Len(), 2)
}
