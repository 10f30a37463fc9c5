// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vec provides the fixed-length vector used as the input, output and
// parameter container of every network.
//
// # Overview
//
// A Vec[T] holds a length fixed at construction. Element access is bounds
// checked, iteration yields (index, value) pairs, and the JSON and YAML codecs
// are length checked: decoding reads exactly Len() elements into an existing
// vector and rejects shorter or longer input.
//
// # Basic Usage
//
//	x := vec.New(1.0, 2.0, 3.0)
//	for i, v := range x.All() {
//	    fmt.Println(i, v)
//	}
//
//	y := vec.Zeros[float64](3)
//	if err := json.Unmarshal([]byte("[4, 5, 6]"), &y); err != nil {
//	    return err // *vec.LengthError for anything but 3 elements
//	}
//
// JSON cannot represent NaN or ±Inf: encoding a vector that holds one fails.
// Use YAML for such values; it encodes them as .nan and .inf.
//
// # Storage
//
// Assigning a Vec shares its storage, like a slice. Use Clone for an
// independent copy. Split and Concat always return independent vectors.
package vec
