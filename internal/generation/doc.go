// Package generation provides the interfaces and error taxonomy for
// interacting with external slide-deck generation services. It abstracts the
// details of the third-party generation API, allowing the application to turn
// trainer text into finished presentations without coupling to a specific
// external provider.
package generation
