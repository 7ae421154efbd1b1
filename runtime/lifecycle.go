package runtime

// Mounter is implemented by components that need a hook once the instance has been rendered
// and attached for the first time. OnMount runs at most once per instance.
type Mounter interface {
	OnMount()
}

// ParameterReceiver is implemented by components that derive state from props.
// OnParametersSet runs before every render of the instance, including the first.
type ParameterReceiver interface {
	OnParametersSet()
}

// Unmounter is implemented by components that release resources when they leave the tree.
type Unmounter interface {
	OnUnmount()
}
