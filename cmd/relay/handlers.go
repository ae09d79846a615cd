package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"groq-relay/internal/app"
	"groq-relay/internal/events"
	"groq-relay/internal/httputil"
	"groq-relay/internal/metrics"
	"groq-relay/internal/relay"
)

// fallbackCompletion replaces the model's reply whenever a completion fails.
const fallbackCompletion = "Error fetching data from Groq"

type groqRequest struct {
	Question *string `json:"question" validate:"required"`
}

type groqResponse struct {
	Completion string `json:"completion"`
}

type whisperResponse struct {
	Transcription string `json:"transcription"`
	GroqResponse  string `json:"groqResponse"`
}

func groqHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var req groqRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}
		question := *req.Question
		deps.Log.Debug("received groq request", "question", question)

		answer, err := deps.Relay.Complete(r.Context(), question)
		completion := completionOrFallback(deps.Log, events.EndpointGroq, answer, err)

		httputil.WriteJSON(w, http.StatusOK, groqResponse{Completion: completion})
		notify(r.Context(), deps, events.Exchange{
			Endpoint:   events.EndpointGroq,
			Question:   question,
			Response:   completion,
			Outcome:    outcome(err),
			DurationMS: time.Since(start).Milliseconds(),
		})
	}
}

func whisperHandler(deps app.Deps) http.HandlerFunc {
	maxSize := deps.Config.MaxUploadSize

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()

		if maxSize > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxSize)
		}
		src, header, err := r.FormFile("audio")
		if err != nil {
			status, message := http.StatusBadRequest, "audio file is required"
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				status, message = http.StatusRequestEntityTooLarge, fmt.Sprintf("audio file too large (max %d bytes)", maxSize)
			}
			httputil.Fail(deps.Log, w, message, relay.UploadError("read audio field", err), status)
			return
		}
		defer src.Close()

		audio, err := deps.Uploads.Save(src, header.Filename)
		if err != nil {
			httputil.Fail(deps.Log, w, "Error saving audio", relay.UploadError("store audio", err), http.StatusInternalServerError)
			return
		}
		defer audio.Remove()
		metrics.UploadBytes.Observe(float64(audio.Size))
		deps.Log.Debug("received audio file", "path", audio.Path, "mime", audio.MIME, "bytes", audio.Size)

		transcription, err := deps.Relay.Transcribe(ctx, audio.Path)
		if err != nil {
			httputil.Fail(deps.Log, w, "Error processing audio", err, http.StatusInternalServerError)
			notify(ctx, deps, events.Exchange{
				Endpoint:   events.EndpointWhisper,
				Outcome:    outcome(err),
				DurationMS: time.Since(start).Milliseconds(),
			})
			return
		}

		answer, err := deps.Relay.Complete(ctx, transcription)
		reply := completionOrFallback(deps.Log, events.EndpointWhisper, answer, err)

		httputil.WriteJSON(w, http.StatusOK, whisperResponse{Transcription: transcription, GroqResponse: reply})
		notify(ctx, deps, events.Exchange{
			Endpoint:      events.EndpointWhisper,
			Transcription: transcription,
			Response:      reply,
			Outcome:       outcome(err),
			DurationMS:    time.Since(start).Milliseconds(),
		})
	}
}

// completionOrFallback maps a failed completion to the fixed fallback text.
// Completion failures never become HTTP errors.
func completionOrFallback(log *slog.Logger, endpoint events.Endpoint, answer string, err error) string {
	if err != nil {
		log.Error("completion failed; using fallback", "endpoint", endpoint, "kind", relay.KindOf(err), "err", err)
		metrics.Fallbacks.WithLabelValues(string(endpoint)).Inc()
		return fallbackCompletion
	}
	return answer
}

func outcome(err error) string {
	if err != nil {
		return string(relay.KindOf(err))
	}
	return "ok"
}

// notify publishes ex in the background so a slow or unreachable broker never
// delays the response or the removal of the request's temp file.
func notify(ctx context.Context, deps app.Deps, ex events.Exchange) {
	ex.ID = uuid.New()
	ex.At = time.Now().UTC()
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := events.PublishWithRetry(ctx, deps.Events, ex, 3, 100*time.Millisecond); err != nil {
			deps.Log.Warn("failed to publish exchange", "endpoint", ex.Endpoint, "err", err)
		}
	}()
}
