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

// Package channelconfig converts between the live state of an inputs.Inputs
// instance and a Record, and between a Record and its JSON representation.
//
// A Record lists, for each channel, the channel settings (bias, limit and bound
// type), the raw value of the channel and the behaviors attached to it in the
// order they are applied. For example:
//
//	{"channels":[{"channel":0,"bias":992,"limit":992,"bound":"clamp","value":0,
//	  "cycle":[{"value":0,"mode":"set"}],
//	  "key_down":[{"key":97,"value":400,"mode":"toggle"}],
//	  "key_up":[],
//	  "button_down":[{"button":0,"device":0,"value":1,"mode":"set"}],
//	  "button_up":[],
//	  "axis":[{"axis":1,"device":0,"value":500,"mode":"set","digital":"rising","threshold":0.5}]}]}
//
// The edge detection state of axis behaviors is not recorded.
package channelconfig
