// Package vkcore is a thin binding over the Vulkan 1.0 C ABI.
//
// Types mirror the C declarations field for field, so values can be passed
// to the driver without conversion. Every structure that carries an sType
// has a NewXxx constructor that sets it. Handles are created through
// methods that return (handle, error) where the error is the raw Result;
// operations whose status is meaningful on success (fence and event
// queries, submits, waits) return the Result itself.
//
// The loader library is opened at runtime without cgo. Call Load once
// before anything else:
//
//	if err := vkcore.Load(); err != nil {
//		return err
//	}
//	info := vkcore.NewInstanceCreateInfo()
//	instance, err := vkcore.CreateInstance(&info, nil)
//
// The package keeps no state beyond the command tables. Callers own every
// handle they create, and Go memory referenced from a structure must stay
// reachable until the call that reads it returns.
package vkcore
