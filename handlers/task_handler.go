package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"divyaAPI/internal/task"
	"divyaAPI/services"
)

type TaskHandler struct {
	taskService *services.TaskService
	logger      *zap.Logger
}

func NewTaskHandler(taskService *services.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.taskService.ListTasks(ctx)
	if err != nil {
		respondWithAppError(w, h.logger, err, "Failed to fetch tasks")
		return
	}

	respondWithJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req task.CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.taskService.AddTask(ctx, &req)
	if err != nil {
		respondWithAppError(w, h.logger, err, "Failed to create task")
		return
	}

	respondWithJSON(w, http.StatusOK, created)
}

// UpdateTask sets the completed flag. A body without "completed" returns the task unchanged.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := mux.Vars(r)["id"]

	var req task.UpdateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var (
		updated *task.Task
		err     error
	)
	if req.Completed == nil {
		updated, err = h.taskService.GetTask(ctx, id)
	} else {
		updated, err = h.taskService.SetTaskCompleted(ctx, id, *req.Completed)
	}
	if err != nil {
		respondWithAppError(w, h.logger, err, "Failed to update task")
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.taskService.DeleteTask(ctx, mux.Vars(r)["id"]); err != nil {
		respondWithAppError(w, h.logger, err, "Failed to delete task")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
