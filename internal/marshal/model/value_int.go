package model

import "strconv"

func (v *Value) reprInt() string {
	return strconv.FormatInt(v.IntVal, 10)
}

// toHostInt projects to a Go int64. Int is never registered
// and therefore never cached.
func (v *Value) toHostInt() (any, error) {
	return v.IntVal, nil
}
