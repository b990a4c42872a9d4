package event

// Swift Package Manager resolution events.

type PackageFetching struct {
	task
	URL string
}

type PackageUpdating struct {
	task
	URL string
}

type PackageCheckingOut struct {
	task
	Version string
	Package string
}

type PackageGraphResolvingStart struct{ task }

type PackageGraphResolvingEnded struct{ task }

// PackageGraphResolvedItem is one "name: url @ version" line of the
// resolved package list.
type PackageGraphResolvedItem struct {
	task
	Name    string
	URL     string
	Version string
}

func (PackageFetching) Kind() Kind            { return KindPackageFetching }
func (PackageUpdating) Kind() Kind            { return KindPackageUpdating }
func (PackageCheckingOut) Kind() Kind         { return KindPackageCheckingOut }
func (PackageGraphResolvingStart) Kind() Kind { return KindPackageGraphResolvingStart }
func (PackageGraphResolvingEnded) Kind() Kind { return KindPackageGraphResolvingEnded }
func (PackageGraphResolvedItem) Kind() Kind   { return KindPackageGraphResolvedItem }
