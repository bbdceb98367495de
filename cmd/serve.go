package cmd

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rmerrell/polyvoice/convert"
	"github.com/rmerrell/polyvoice/model"
	"github.com/rmerrell/polyvoice/theory"
	"github.com/rmerrell/polyvoice/validate"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the notation API",
	Long:  `Serves validation, conversion and theory lookups over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleValidate(w http.ResponseWriter, r *http.Request) {
	var score model.Score
	if err := json.NewDecoder(r.Body).Decode(&score); err != nil {
		writeBadRequest(w, "Could not unmarshal request body: "+err.Error())
		return
	}
	json.NewEncoder(w).Encode(validate.ValidateScore(&score))
}

func HandleConvertScore(w http.ResponseWriter, r *http.Request) {
	var flat model.SheetMusic
	if err := json.NewDecoder(r.Body).Decode(&flat); err != nil {
		writeBadRequest(w, "Could not unmarshal request body: "+err.Error())
		return
	}
	json.NewEncoder(w).Encode(convert.SheetMusicToScore(&flat))
}

func HandleConvertSheet(w http.ResponseWriter, r *http.Request) {
	var score model.Score
	if err := json.NewDecoder(r.Body).Decode(&score); err != nil {
		writeBadRequest(w, "Could not unmarshal request body: "+err.Error())
		return
	}
	json.NewEncoder(w).Encode(convert.ScoreToSheetMusic(&score))
}

func HandleMerge(w http.ResponseWriter, r *http.Request) {
	var input model.MergeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "Could not unmarshal request body: "+err.Error())
		return
	}
	if len(input.Scores) == 0 {
		writeBadRequest(w, "Need at least one score to merge")
		return
	}
	json.NewEncoder(w).Encode(convert.MergeScores(input.Scores, input.Title))
}

func HandleScales(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	notes, err := theory.GetScaleNotes(vars["root"], model.ScaleType(vars["type"]))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	json.NewEncoder(w).Encode(model.NotesResponse{Notes: notes})
}

func HandleChords(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	notes, err := theory.GetChordNotes(vars["root"], model.ChordType(vars["type"]))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	json.NewEncoder(w).Encode(model.NotesResponse{Notes: notes})
}

func HandleKeys(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	alterations, err := theory.GetKeySignatureAlterations(model.KeySignature(vars["key"]))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	json.NewEncoder(w).Encode(alterations)
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/validate", HandleValidate).Methods("POST")
	router.HandleFunc("/convert/score", HandleConvertScore).Methods("POST")
	router.HandleFunc("/convert/sheet", HandleConvertSheet).Methods("POST")
	router.HandleFunc("/merge", HandleMerge).Methods("POST")
	router.HandleFunc("/scales/{root}/{type}", HandleScales).Methods("GET")
	router.HandleFunc("/chords/{root}/{type}", HandleChords).Methods("GET")
	router.HandleFunc("/keys/{key}", HandleKeys).Methods("GET")
	return router
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Info("request")
		next.ServeHTTP(w, r)
	})
}

func serve() {
	handler := cors.Default().Handler(logRequests(NewRouter()))
	log.Info("listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
