// File: services/intelligence/interface.go
package ai

import (
	"context"
	"time"

	tourRepo "aptiva/database/repository/tour"
	"aptiva/models"
	listingSvc "aptiva/services/listing"
	"aptiva/services/scheduling"
	"aptiva/services/tasks"
	"aptiva/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Classifier is the external text-understanding capability: it maps one
// free-text turn, given the current stage, to a scheduling intent. A rule
// based implementation stands in when no model is configured.
type Classifier interface {
	Classify(ctx context.Context, text string, stage models.Stage, now time.Time) (models.ClassifiedInput, error)
}

// AssistantService processes one conversational turn.
type AssistantService interface {
	ProcessTurn(req models.ChatRequest, userID string) (*models.ChatResponse, error)
}

// DefaultAssistantService wires the classifier, the negotiation engine, the
// listing context and the per-conversation context store together. Each
// conversation's turns run sequentially; independent conversations only
// share the stateless collaborators below.
type DefaultAssistantService struct {
	CtxStore   *RedisContextStore
	Classifier Classifier
	Engine     *scheduling.Engine
	Listings   listingSvc.Service
	Tours      tourRepo.TourRepository
	Reminders  *tasks.ReminderScheduler
}

func (s *DefaultAssistantService) ProcessTurn(req models.ChatRequest, userID string) (*models.ChatResponse, error) {
	ctx := context.Background()
	logger := utils.GetLogger()

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	sess, err := s.CtxStore.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	sess.ConversationID = conversationID
	sess.UserID = userID

	// Switching the focused listing invalidates all in-progress scheduling.
	if req.ListingID != "" && req.ListingID != sess.ListingID {
		l, err := s.Listings.Get(req.ListingID)
		if err != nil {
			return s.respond(ctx, sess, "I couldn't find that listing. Could you pick one from the search results?", nil)
		}
		sess.ListingID = l.ID
		sess.ListingTitle = l.Title
		sess.ListingAddress = l.Address
		sess.AgentCalendarID = l.AgentCal
		sess.Scheduling = models.NewSchedulingState(l.ID)
	}

	stage := models.StageIdle
	if sess.Scheduling != nil {
		stage = sess.Scheduling.Stage
	}

	input, err := s.Classifier.Classify(ctx, req.Text, stage, time.Now())
	if err != nil {
		// Unclassifiable input never guesses a transition.
		logger.Warn("classification failed, re-prompting", zap.Error(err))
		return s.respond(ctx, sess, "Sorry, I didn't catch that - could you rephrase?", nil)
	}

	if sess.ListingID == "" {
		if input.Intent == models.IntentUnrelated {
			return s.respond(ctx, sess, "Tell me what you're looking for and I'll pull up some listings.", nil)
		}
		return s.respond(ctx, sess, "Which listing would you like to tour? Pick one and I'll check the calendars.", nil)
	}

	if sess.Scheduling == nil {
		// Created lazily on the first scheduling intent for this listing.
		sess.Scheduling = models.NewSchedulingState(sess.ListingID)
	}

	details := scheduling.TourDetails{
		ListingTitle:    sess.ListingTitle,
		ListingAddress:  sess.ListingAddress,
		AgentCalendarID: sess.AgentCalendarID,
	}
	turn := s.Engine.HandleTurn(ctx, sess.Scheduling, input, details)

	if turn.Booking != nil && turn.Booking.Status != models.BookingFailed {
		s.recordBooking(sess, turn.Booking)
	}
	if sess.Scheduling.Stage == models.StageBooked {
		// Negotiation is done; a later tour request starts clean.
		sess.Scheduling = models.NewSchedulingState(sess.ListingID)
	}

	return s.respond(ctx, sess, turn.Reply, slotActions(sess.Scheduling))
}

// recordBooking persists the tour and schedules a reminder. Partial bookings
// are persisted too so support can reconcile them; they get no reminder.
func (s *DefaultAssistantService) recordBooking(sess *models.SessionContext, result *models.BookingResult) {
	logger := utils.GetLogger()

	rec := &models.TourRecord{
		ID:                 uuid.New().String(),
		UserID:             sess.UserID,
		ListingID:          sess.ListingID,
		ListingTitle:       sess.ListingTitle,
		ListingAddress:     sess.ListingAddress,
		Start:              result.Slot.Start,
		End:                result.Slot.End,
		RenterEventID:      result.RenterEventID,
		LandlordEventID:    result.LandlordEventID,
		LandlordCalendarID: result.LandlordCalendarID,
		Status:             result.Status,
	}
	if err := s.Tours.Create(rec); err != nil {
		logger.Error("failed to persist tour record", zap.Error(err))
		return
	}

	if result.Status == models.BookingCommitted && s.Reminders != nil {
		if err := s.Reminders.ScheduleTourReminder(*rec); err != nil {
			logger.Warn("failed to schedule tour reminder", zap.Error(err))
		}
	}
}

func (s *DefaultAssistantService) respond(ctx context.Context, sess *models.SessionContext, reply string, actions []models.ChatAction) (*models.ChatResponse, error) {
	if err := s.CtxStore.Set(ctx, sess.ConversationID, sess); err != nil {
		return nil, err
	}
	stage := models.StageIdle
	if sess.Scheduling != nil {
		stage = sess.Scheduling.Stage
	}
	return &models.ChatResponse{
		ConversationID: sess.ConversationID,
		ReplyText:      reply,
		Stage:          stage,
		Actions:        actions,
	}, nil
}

// slotActions mirrors the current proposal as tappable actions.
func slotActions(state *models.SchedulingState) []models.ChatAction {
	if state == nil || state.Stage != models.StageSlotsProposed {
		return nil
	}
	actions := make([]models.ChatAction, 0, len(state.ProposedSlots)+1)
	for i, slot := range state.ProposedSlots {
		actions = append(actions, models.ChatAction{
			Label:     slot.Label,
			Type:      "select_slot",
			SlotIndex: i + 1,
		})
	}
	actions = append(actions, models.ChatAction{Label: "None of these work", Type: "widen_window"})
	return actions
}
