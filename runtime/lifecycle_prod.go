//go:build !dev

package runtime

import "github.com/vcrobe/navheader/console"

// recoverLifecycle logs a panic raised by a lifecycle hook instead of crashing the app.
func recoverLifecycle(hook, key string) {
	if rec := recover(); rec != nil {
		console.WithFields(map[string]any{
			"hook":      hook,
			"component": key,
		}).Errorf("lifecycle panic: %v", rec)
	}
}

// CallOnMount invokes the OnMount lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func CallOnMount(m Mounter, key string) {
	defer recoverLifecycle("OnMount", key)
	m.OnMount()
}

// CallOnParametersSet invokes the OnParametersSet lifecycle method in production mode.
func CallOnParametersSet(receiver ParameterReceiver, key string) {
	defer recoverLifecycle("OnParametersSet", key)
	receiver.OnParametersSet()
}

// CallOnUnmount invokes the OnUnmount lifecycle method in production mode.
func CallOnUnmount(u Unmounter, key string) {
	defer recoverLifecycle("OnUnmount", key)
	u.OnUnmount()
}
