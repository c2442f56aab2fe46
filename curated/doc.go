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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages declare their
// patterns as exported constants and callers test against them with the Is()
// and Has() functions. For example:
//
//	const ChannelOutOfRange = "channel index out of range: %d"
//
//	e := curated.Errorf(ChannelOutOfRange, 20)
//
//	if curated.Is(e, ChannelOutOfRange) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("inputs: %v", e)
//
//	if curated.Has(f, ChannelOutOfRange) {
//		fmt.Println("true")
//	}
//
// In this example a call to Is(f, ChannelOutOfRange) would return false
// because f was created with the pattern "inputs: %v".
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors depending on how we choose to handle them.
//
// The Error() function ensures that the error chain does not contain
// duplicate adjacent parts. Chains are composed of parts separated by the
// sub-string ": ". So wrapping like this:
//
//	curated.Errorf("inputs: %v", curated.Errorf("inputs: bad trigger"))
//
// will result in the message:
//
//	inputs: bad trigger
//
// and not:
//
//	inputs: inputs: bad trigger
package curated
