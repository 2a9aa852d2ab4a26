/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package profile

import "errors"

// Sentinel errors for document loading.
var (
	// ErrUnknownDocument indicates JSON that matches none of the
	// canonical document shapes.
	ErrUnknownDocument = errors.New("unrecognized document shape")
)
