package service

// ImageResolver turns an image reference from the backend into a URL the
// browser can load.
type ImageResolver interface {
	ResolveImage(ref string) string
}
