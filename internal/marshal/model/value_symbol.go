package model

import "fmt"

func (v *Value) reprSymbol() string {
	return fmt.Sprintf(":%s", v.Name)
}

// toHostSymbol projects to a Go string. The host runtime is free to intern
// it; that is outside what the codec can observe, so the
// projection is cached like any other registered value.
func (v *Value) toHostSymbol() (any, error) {
	if cached, ok := v.CachedHost(); ok {
		return cached, nil
	}
	host := string(v.Name)
	v.FillHostCache(host)
	return host, nil
}
