package contracts

import "net/http"

// ChangeBroadcaster pushes serialized change events to live subscribers of a document.
type ChangeBroadcaster interface {
	Broadcast(documentId string, payload []byte)
	ServeWs(documentId string, w http.ResponseWriter, r *http.Request) error
	Subscribers(documentId string) int
}
