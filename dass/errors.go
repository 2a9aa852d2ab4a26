/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package dass

import "errors"

// Sentinel errors for decision-matrix conversion.
var (
	// ErrUnsupportedConversion indicates a document family that has no
	// decision-matrix mapping.
	ErrUnsupportedConversion = errors.New("dass conversion requires ordinal data")
)
