//go:build dev

package runtime

// CallOnMount invokes the OnMount lifecycle method in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func CallOnMount(m Mounter, key string) {
	m.OnMount()
}

// CallOnParametersSet invokes the OnParametersSet lifecycle method in development mode.
func CallOnParametersSet(receiver ParameterReceiver, key string) {
	receiver.OnParametersSet()
}

// CallOnUnmount invokes the OnUnmount lifecycle method in development mode.
func CallOnUnmount(u Unmounter, key string) {
	u.OnUnmount()
}
