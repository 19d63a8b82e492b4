package wirebox

// Lifecycle is implemented by beans that want hooks around their
// container-managed lifetime. OnBoot runs right after construction and
// injection; a non-nil error aborts the resolution that triggered it.
// OnShutdown runs during Container.Teardown for cached singletons, in
// reverse instantiation order.
type Lifecycle interface {
	OnBoot(ctx *ContainerContext) error
	OnShutdown(ctx *ContainerContext) error
}
