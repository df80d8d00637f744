// Copyright ©2024 The Region Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "fmt"

// InvalidArgumentError reports a constructor argument that is structurally
// invalid (e.g. an order outside the supported range) rather than merely
// out of the curve's spatial domain.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("curve: invalid argument: %s", e.Reason)
}

// OverflowError reports that a curve's maxDistance (or a derived quantity)
// would not fit the integer width the implementation relies on.
type OverflowError struct {
	Reason string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("curve: overflow: %s", e.Reason)
}
