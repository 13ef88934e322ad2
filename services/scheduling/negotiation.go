package scheduling

import (
	"context"
	"fmt"
	"time"

	"aptiva/models"
	"aptiva/services/calendar"
	"aptiva/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultWindowDays = 7

const manualCoordinationReply = "I couldn't reach the calendars just now. " +
	"Would you like me to pass your contact details to the landlord so you can coordinate a time directly?"

// Engine is the per-conversation negotiation state machine. One engine
// instance serves all conversations; all mutable negotiation state lives in
// the SchedulingState it is handed, and a conversation's turns are processed
// strictly sequentially, so the engine itself holds no locks.
type Engine struct {
	Calendar           calendar.Service
	Coordinator        *Coordinator
	Opts               SlotOptions
	RenterCalendarID   string
	LandlordCalendarID string
	Now                func() time.Time // defaults to time.Now; injectable for tests
}

// TurnResult is the outcome of one user turn against the state machine.
type TurnResult struct {
	Reply   string
	Booking *models.BookingResult // non-nil only when a booking was attempted
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// HandleTurn advances the negotiation for one classified user turn, mutating
// state in place. Unclassifiable or unrelated input never guesses a
// transition: the machine stays put and re-prompts.
func (e *Engine) HandleTurn(ctx context.Context, state *models.SchedulingState, input models.ClassifiedInput, details TourDetails) TurnResult {
	switch input.Intent {
	case models.IntentCancel:
		e.reset(state)
		return TurnResult{Reply: "No problem, I've cancelled the scheduling. Let me know if you'd like to set up a tour later."}

	case models.IntentProvideWindow:
		return e.handleWindow(ctx, state, input.Window, details)

	case models.IntentSelectSlot:
		return e.handleSelection(ctx, state, input.SlotIndex, details)

	case models.IntentRejectAll:
		if state.Stage == models.StageSlotsProposed {
			state.Stage = models.StageWindowRequested
			state.ProposedSlots = nil
			state.ProposalID = ""
			return TurnResult{Reply: "Sure - what other days or times would work for you?"}
		}
		return TurnResult{Reply: e.reprompt(state)}

	default:
		return TurnResult{Reply: e.reprompt(state)}
	}
}

// reset returns the state to idle, invalidating any in-progress proposal.
func (e *Engine) reset(state *models.SchedulingState) {
	state.Stage = models.StageIdle
	state.RequestedWindow = nil
	state.ProposedSlots = nil
	state.ProposalID = ""
	state.ChosenSlot = nil
}

// handleWindow records the requested window (defaulting to "as soon as
// possible": today through +7 days) and attempts one proposal.
func (e *Engine) handleWindow(ctx context.Context, state *models.SchedulingState, window *models.TimeWindow, details TourDetails) TurnResult {
	if window == nil || window.IsZero() {
		start := e.now().UTC()
		window = &models.TimeWindow{
			Start: start,
			End:   start.AddDate(0, 0, defaultWindowDays),
			Label: "as soon as possible",
		}
	}
	normalized := NormalizeWindowStart(*window, e.Opts)
	state.RequestedWindow = &normalized
	state.Stage = models.StageWindowRequested
	state.ProposedSlots = nil
	state.ProposalID = ""
	state.ChosenSlot = nil

	return e.propose(ctx, state, details)
}

// propose computes common slots for the requested window. If the first pass
// finds nothing the window is widened once by another week within the same
// turn; beyond that the user is asked to adjust. There is no transition loop.
func (e *Engine) propose(ctx context.Context, state *models.SchedulingState, details TourDetails) TurnResult {
	window := *state.RequestedWindow

	slots, err := e.computeSlots(ctx, window, details)
	if err != nil {
		utils.GetLogger().Warn("slot computation degraded to manual coordination", zap.Error(err))
		return TurnResult{Reply: manualCoordinationReply}
	}

	if len(slots) == 0 {
		widened := window
		widened.End = widened.End.AddDate(0, 0, defaultWindowDays)
		slots, err = e.computeSlots(ctx, widened, details)
		if err != nil {
			utils.GetLogger().Warn("slot computation degraded to manual coordination", zap.Error(err))
			return TurnResult{Reply: manualCoordinationReply}
		}
		if len(slots) == 0 {
			return TurnResult{Reply: "I couldn't find a time when both calendars are free in that range. " +
				"Could you widen the window, or would you prefer to coordinate with the landlord directly?"}
		}
		window = widened
		state.RequestedWindow = &window
	}

	state.ProposedSlots = LabelSlots(slots, e.Opts.Local)
	state.ProposalID = uuid.New().String()
	state.Stage = models.StageSlotsProposed
	return TurnResult{Reply: RenderProposal(state.ProposedSlots, window.Label)}
}

func (e *Engine) computeSlots(ctx context.Context, window models.TimeWindow, details TourDetails) ([]models.FreeSlot, error) {
	landlordCal := e.LandlordCalendarID
	if details.AgentCalendarID != "" {
		landlordCal = details.AgentCalendarID
	}

	renterBusy, err := e.Calendar.GetBusyIntervals(ctx, e.RenterCalendarID, window)
	if err != nil {
		return nil, err
	}
	landlordBusy, err := e.Calendar.GetBusyIntervals(ctx, landlordCal, window)
	if err != nil {
		return nil, err
	}
	return CommonSlots(window, renterBusy, landlordBusy, e.Opts), nil
}

// handleSelection validates a 1-based pick against the current proposal and,
// if valid, confirms and books it. Invalid or stale picks re-display the
// same list unchanged; no interval computation is redone.
func (e *Engine) handleSelection(ctx context.Context, state *models.SchedulingState, index int, details TourDetails) TurnResult {
	if state.Stage != models.StageSlotsProposed || len(state.ProposedSlots) == 0 {
		return TurnResult{Reply: e.reprompt(state)}
	}
	if index < 1 || index > len(state.ProposedSlots) {
		utils.GetLogger().Debug("slot selection rejected",
			zap.Error(InvalidSelection(fmt.Sprintf("pick %d outside 1..%d of proposal %s",
				index, len(state.ProposedSlots), state.ProposalID))))
		reply := fmt.Sprintf("That option isn't on the current list - please pick a number between 1 and %d.\n\n%s",
			len(state.ProposedSlots), RenderProposal(state.ProposedSlots, windowLabel(state)))
		return TurnResult{Reply: reply}
	}

	chosen := state.ProposedSlots[index-1]
	state.ChosenSlot = &chosen
	state.Stage = models.StageSlotConfirmed

	result, err := e.Coordinator.Book(ctx, chosen, details)
	if err != nil {
		// Keep the pre-confirmation proposal and re-offer it unchanged so a
		// transient failure cannot trigger recomputation and double-booking.
		state.Stage = models.StageSlotsProposed
		state.ChosenSlot = nil

		var reply string
		if result.Status == models.BookingPartial {
			reply = fmt.Sprintf("I added the tour to your calendar, but the landlord's calendar didn't confirm. "+
				"Your event is saved (id %s); I have NOT removed it. "+
				"You can pick the same or another time to retry, or coordinate with the landlord directly.\n\n%s",
				result.RenterEventID, RenderProposal(state.ProposedSlots, windowLabel(state)))
		} else {
			reply = fmt.Sprintf("I couldn't reach your calendar, so nothing was booked. "+
				"The times below are still on offer.\n\n%s",
				RenderProposal(state.ProposedSlots, windowLabel(state)))
		}
		return TurnResult{Reply: reply, Booking: &result}
	}

	state.Stage = models.StageBooked
	reply := fmt.Sprintf("Booked! Your tour of %s is confirmed for %s. Both calendars have the event.",
		details.ListingTitle, chosen.Label)
	return TurnResult{Reply: reply, Booking: &result}
}

// reprompt restates the question for the current stage without changing it.
func (e *Engine) reprompt(state *models.SchedulingState) string {
	switch state.Stage {
	case models.StageSlotsProposed:
		return RenderProposal(state.ProposedSlots, windowLabel(state))
	case models.StageWindowRequested:
		return "What days or times would work for the tour? I can also just look for the soonest opening."
	case models.StageSlotConfirmed, models.StageBooked:
		return "Your tour is being finalized. Say 'cancel' if you'd like to stop."
	default:
		return "If you'd like to tour this place, tell me when works for you and I'll check both calendars."
	}
}

func windowLabel(state *models.SchedulingState) string {
	if state.RequestedWindow != nil {
		return state.RequestedWindow.Label
	}
	return ""
}
