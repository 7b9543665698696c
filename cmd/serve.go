package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/pnote/constants"
	"github.com/jsphweid/pnote/model"
	"github.com/jsphweid/pnote/pnote"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the conversion HTTP service",
	Long:  `Runs the conversion HTTP service`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// HandleConvert converts a raw MIDI request body into PNote text.
func HandleConvert(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, reqID, err)
		return
	}

	p, err := pnote.FromMIDI(body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, reqID, err)
		return
	}

	log.Printf("[%v] converted %v bytes of MIDI into %v events", reqID, len(body), p.Len())
	writeJSON(w, model.ConvertResponse{PNote: p.String()})
}

// HandleNormalize parses a PNote request body and returns it in
// canonical order.
func HandleNormalize(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, reqID, err)
		return
	}

	p, err := pnote.FromString(string(body))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, reqID, err)
		return
	}

	log.Printf("[%v] normalized %v events", reqID, p.Len())
	writeJSON(w, model.ConvertResponse{PNote: p.String()})
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, reqID string, err error) {
	log.Printf("[%v] %v", reqID, err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	router.HandleFunc("/normalize", HandleNormalize).Methods("POST")
	handler := cors.Default().Handler(router)

	addr := ":" + constants.GetPort()
	log.Printf("pnote server listening on %v", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
