package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/animtx/anim"
)

// Api serves timeline diagnostics over HTTP.
type Api struct {
	addr     string
	streamer *anim.Streamer
}

// NewApi creates an instance of an Api.
func NewApi(addr string, streamer *anim.Streamer) *Api {
	a := new(Api)
	a.addr = addr
	a.streamer = streamer
	return a
}

func (a *Api) handleAnimations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.streamer.Status()); err != nil {
		log.Printf("Failed to encode animation status: %v", err)
	}
}

func (a *Api) Serve() {
	http.HandleFunc("/animations", a.handleAnimations)

	log.Println("Listening...")
	http.ListenAndServe(a.addr, nil)
}
