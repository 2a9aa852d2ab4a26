/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package format

import "errors"

// Sentinel errors for format detection.
var (
	// ErrUnsupportedFormat indicates a file extension outside the six
	// PrefLib formats.
	ErrUnsupportedFormat = errors.New("unsupported preflib format")
)
