package handlers

import (
	"bytes"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/slack-go/slack"

	"jirabot/models"
	"jirabot/usecases"
)

const msgCommandFailed = "Something went wrong while processing your command. Please try again later."

type SlackWebhooksHandler struct {
	signingSecret   string
	teamID          string
	commandsUseCase usecases.CommandsUseCaseInterface
}

func NewSlackWebhooksHandler(
	signingSecret, teamID string,
	commandsUseCase usecases.CommandsUseCaseInterface,
) *SlackWebhooksHandler {
	return &SlackWebhooksHandler{
		signingSecret:   signingSecret,
		teamID:          teamID,
		commandsUseCase: commandsUseCase,
	}
}

func (h *SlackWebhooksHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	log.Printf("⚡ Slack command received from %s", r.RemoteAddr)
	var buf bytes.Buffer
	tee := io.TeeReader(r.Body, &buf)

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		log.Printf("❌ Invalid secret verifier: %v", err)
		http.Error(w, "invalid secret verifier", http.StatusUnauthorized)
		return
	}

	if _, err := io.Copy(&verifier, tee); err != nil {
		log.Printf("❌ Failed to read request body: %v", err)
		http.Error(w, "failed to read body", http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		log.Printf("❌ Slack signature verification failed: %v", err)
		http.Error(w, "signature verification failed", http.StatusUnauthorized)
		return
	}

	r.Body = io.NopCloser(&buf)

	command, err := slack.SlashCommandParse(r)
	if err != nil {
		log.Printf("❌ Failed to parse slash command: %v", err)
		http.Error(w, "failed to parse slash command", http.StatusInternalServerError)
		return
	}

	if h.teamID != "" && command.TeamID != h.teamID {
		log.Printf("❌ Slash command from unexpected team %s - rejecting", command.TeamID)
		http.Error(w, "unauthorized team", http.StatusUnauthorized)
		return
	}

	log.Printf("⚡ Parsed slash command: %s from user %s in channel %s",
		command.Command, command.UserID, command.ChannelID)

	req := models.SlashCommandRequest{
		UserID:    command.UserID,
		ChannelID: command.ChannelID,
		TeamID:    command.TeamID,
		Text:      command.Text,
	}

	ack, err := h.commandsUseCase.ProcessSlashCommand(r.Context(), req)
	if err != nil {
		// Transport failure against Slack or Jira - fail the whole command
		// rather than acknowledge something that may not have happened.
		log.Printf("❌ Failed to process slash command: %v", err)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(msgCommandFailed)); err != nil {
			log.Printf("❌ Failed to write command response: %v", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if ack != "" {
		if _, err := w.Write([]byte(ack)); err != nil {
			log.Printf("❌ Failed to write command response: %v", err)
		}
	}
}

func (h *SlackWebhooksHandler) SetupEndpoints(router *mux.Router) {
	log.Printf("🚀 Registering Slack commands endpoint on /slack/commands")
	router.HandleFunc("/slack/commands", h.HandleSlashCommand).Methods("POST")
}
