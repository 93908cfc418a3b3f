package dhwire

import "time"

const defaultTTL = 10 * time.Minute

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func unitCost(string, []byte) int64 { return 1 }

// withDefaults fills every optional field. Required fields are left alone.
func (o Options[V]) withDefaults() Options[V] {
	o.Logger = coalesce[Logger](o.Logger, NopLogger{})
	o.Hooks = coalesce[Hooks](o.Hooks, NopHooks{})
	o.DefaultTTL = coalesce(o.DefaultTTL, defaultTTL)
	if o.ComputeSetCost == nil {
		o.ComputeSetCost = unitCost
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
