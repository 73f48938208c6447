// Package api
// Author: xitren
// License: Apache-2.0
//
// Public contracts of the dmaring library.
//
// The api package holds only interfaces and error types so that the
// concrete packages (ring, pool, dma) can depend on a stable surface
// without depending on each other.
package api
