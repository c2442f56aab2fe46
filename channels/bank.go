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

package channels

import (
	"github.com/rcmapper/rcmapper/curated"
)

// Sentinal error patterns.
const (
	InvalidSize       = "channels: invalid number of channels: %d"
	ChannelOutOfRange = "channels: channel index out of range: %d (bank size %d)"
	InvalidLimit      = "channels: limit must not be negative: %d"
)

// Default values for the bias and limit of every channel in a new bank. The
// values centre the output on 992, the mid-point of the 11-bit channel range
// used by common RC serial protocols.
const (
	DefaultBias  = 992
	DefaultLimit = 992
)

// Bank is the fixed-size array of channels. All slices are always the same
// length.
type Bank struct {
	raw    []int
	bias   []int
	limit  []int
	bounds []BoundType
}

// NewBank is the preferred method of initialisation for the Bank type. Every
// channel starts with a raw value of zero, the default bias and limit and the
// Clamp bound type.
func NewBank(n int) (*Bank, error) {
	if n <= 0 {
		return nil, curated.Errorf(InvalidSize, n)
	}

	b := &Bank{
		raw:    make([]int, n),
		bias:   make([]int, n),
		limit:  make([]int, n),
		bounds: make([]BoundType, n),
	}

	for i := range n {
		b.bias[i] = DefaultBias
		b.limit[i] = DefaultLimit
	}

	return b, nil
}

// Len returns the number of channels in the bank.
func (b *Bank) Len() int {
	return len(b.raw)
}

// Check returns an error if the channel index is not valid for the bank.
func (b *Bank) Check(channel int) error {
	if channel < 0 || channel >= len(b.raw) {
		return curated.Errorf(ChannelOutOfRange, channel, len(b.raw))
	}
	return nil
}

// Raw returns the slice of raw channel values. The slice is owned by the bank
// and changes made to it are changes to the bank. It is intended for use by
// behaviors.
func (b *Bank) Raw() []int {
	return b.raw
}

// Value returns the raw value of the channel.
func (b *Bank) Value(channel int) (int, error) {
	if err := b.Check(channel); err != nil {
		return 0, err
	}
	return b.raw[channel], nil
}

// SetValue sets the raw value of the channel.
func (b *Bank) SetValue(channel int, v int) error {
	if err := b.Check(channel); err != nil {
		return err
	}
	b.raw[channel] = v
	return nil
}

// Bias returns the bias of the channel.
func (b *Bank) Bias(channel int) (int, error) {
	if err := b.Check(channel); err != nil {
		return 0, err
	}
	return b.bias[channel], nil
}

// SetBias sets the bias of the channel. The bias is only used when creating
// the output snapshot.
func (b *Bank) SetBias(channel int, bias int) error {
	if err := b.Check(channel); err != nil {
		return err
	}
	b.bias[channel] = bias
	return nil
}

// Limit returns the limit of the channel.
func (b *Bank) Limit(channel int) (int, error) {
	if err := b.Check(channel); err != nil {
		return 0, err
	}
	return b.limit[channel], nil
}

// SetLimit sets the limit of the channel. The limit is a magnitude and must
// not be negative.
func (b *Bank) SetLimit(channel int, limit int) error {
	if err := b.Check(channel); err != nil {
		return err
	}
	if limit < 0 {
		return curated.Errorf(InvalidLimit, limit)
	}
	b.limit[channel] = limit
	return nil
}

// Bound returns the bound type of the channel.
func (b *Bank) Bound(channel int) (BoundType, error) {
	if err := b.Check(channel); err != nil {
		return Clamp, err
	}
	return b.bounds[channel], nil
}

// SetBound sets the bound type of the channel.
func (b *Bank) SetBound(channel int, bound BoundType) error {
	if err := b.Check(channel); err != nil {
		return err
	}
	b.bounds[channel] = bound
	return nil
}

// ApplyBounds applies the range policy of every channel to its raw value.
func (b *Bank) ApplyBounds() {
	for i := range b.raw {
		b.raw[i] = Bound(b.raw[i], b.limit[i], b.bounds[i])
	}
}

// Snapshot writes the biased value of every channel to buf. If buf is too
// short a new slice is allocated. The slice that was written to is returned.
func (b *Bank) Snapshot(buf []int) []int {
	if len(buf) < len(b.raw) {
		buf = make([]int, len(b.raw))
	}
	buf = buf[:len(b.raw)]
	for i := range b.raw {
		buf[i] = b.raw[i] + b.bias[i]
	}
	return buf
}
