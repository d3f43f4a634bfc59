// Package events defines the topics and payloads exchanged between the
// graph body, the selection handler, pointer input and renderers.
package events
