// Package sink defines the output sink protocol, the push based dual of a cursor.Cursor.
package sink

// Sink accepts pushed elements.
type Sink[T any] interface {
	Add(item T)
}
