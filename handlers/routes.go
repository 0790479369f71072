package handlers

import (
	"github.com/gorilla/mux"
)

// API groups the handlers mounted under /api.
type API struct {
	Tasks    *TaskHandler
	Settings *SettingsHandler
	Library  *LibraryHandler
	Contact  *ContactHandler
	Chat     *ChatHandler
}

func (a *API) Register(api *mux.Router) {
	api.HandleFunc("/tasks", a.Tasks.GetTasks).Methods("GET")
	api.HandleFunc("/tasks", a.Tasks.AddTask).Methods("POST")
	api.HandleFunc("/tasks/{id}", a.Tasks.UpdateTask).Methods("PATCH")
	api.HandleFunc("/tasks/{id}", a.Tasks.DeleteTask).Methods("DELETE")

	api.HandleFunc("/settings", a.Settings.GetSettings).Methods("GET")
	api.HandleFunc("/settings", a.Settings.UpdateSettings).Methods("PATCH")
	api.HandleFunc("/streak/complete-day", a.Settings.CompleteDay).Methods("POST")

	api.HandleFunc("/quotes/random", a.Library.GetRandomQuote).Methods("GET")
	api.HandleFunc("/quotes", a.Library.GetQuotes).Methods("GET")
	api.HandleFunc("/quotes", a.Library.AddQuote).Methods("POST")
	api.HandleFunc("/books", a.Library.GetBooks).Methods("GET")
	api.HandleFunc("/books/{id}", a.Library.GetBook).Methods("GET")
	api.HandleFunc("/books", a.Library.AddBook).Methods("POST")

	api.HandleFunc("/contact", a.Contact.SubmitContact).Methods("POST")
	api.HandleFunc("/chat", a.Chat.Ask).Methods("POST")
}
