// Package mirror stores flights in the mirror table and raises status alerts
// for flights that move to a disrupted status.
package mirror

import (
	queuemsg "github.com/meetupaws/travel_catalog/flights/internal/model"
	"github.com/meetupaws/travel_catalog/flights/internal/repository"
	"github.com/meetupaws/travel_catalog/internal/model"
	"github.com/pkg/errors"
)

type FlightsRepository interface {
	Find(id int) (model.Flight, error)
	Save(m model.Flight) (model.Flight, error)
}

type Enqueuer interface {
	SendMsg(msg interface{}, queue string) error
}

// Outcome describes what storing one flight did.
type Outcome struct {
	StatusChanged bool
	AlertEnqueued bool
}

type Writer struct {
	flightsRepo FlightsRepository
	enqueuer    Enqueuer
	statusQueue string
}

// Store saves f and enqueues a QueueMsgStatusChanged when a stored flight
// moves to delayed or cancelled. The alert goes out before the save: when
// enqueuing fails the stored status is left as it was, so the next write
// sees the same change again.
func (w *Writer) Store(f model.Flight) (Outcome, error) {
	outcome := Outcome{}

	previous, err := w.flightsRepo.Find(f.ID)
	known := err == nil
	if err != nil && err != repository.ErrNoFlightsFound {
		return outcome, err
	}

	if known && previous.Status != f.Status {
		outcome.StatusChanged = true
		if f.Status.Disrupted() {
			msg := queuemsg.NewQueueMsgStatusChanged(previous.Status, f)
			if err := w.enqueuer.SendMsg(msg, w.statusQueue); err != nil {
				return outcome, errors.Wrapf(err, "enqueuing status change of flight %d", f.ID)
			}
			outcome.AlertEnqueued = true
		}
	}

	if _, err := w.flightsRepo.Save(f); err != nil {
		return outcome, err
	}
	return outcome, nil
}

func NewWriter(flightsRepo FlightsRepository, enqueuer Enqueuer, statusQueue string) *Writer {
	return &Writer{
		flightsRepo: flightsRepo,
		enqueuer:    enqueuer,
		statusQueue: statusQueue,
	}
}
