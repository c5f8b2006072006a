package handlers

import (
	"net/http"

	"sgac_app_go/db"
	"sgac_app_go/dto"
	"sgac_app_go/models"
	"sgac_app_go/services"

	"github.com/labstack/echo/v4"
)

func eventFromPath(c echo.Context) (*models.Event, error) {
	return lookupOne[models.Event](c, services.EventsQuery(db.DB), services.EventLookup)
}

// eventResponse loads the professor linked to event
func eventResponse(event *models.Event) (dto.EventResponse, error) {
	professors, err := services.EventProfessors(db.DB, []uint{event.ID})
	if err != nil {
		return dto.EventResponse{}, err
	}
	return dto.NewEventResponse(event, professors[event.ID]), nil
}

// ListEventsHandler handles GET /events
func ListEventsHandler(c echo.Context) error {
	p, err := paginationFromRequest(c)
	if err != nil {
		return err
	}
	events, info, err := services.ListEvents(db.DB, p)
	if err != nil {
		return err
	}

	ids := make([]uint, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	professors, err := services.EventProfessors(db.DB, ids)
	if err != nil {
		return err
	}

	out := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, dto.NewEventResponse(&events[i], professors[events[i].ID]))
	}
	return respondList(c, out, info, p)
}

// CreateEventHandler handles POST /events
func CreateEventHandler(c echo.Context) error {
	var req dto.EventRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	event, err := services.CreateEvent(db.DB, &req)
	if err != nil {
		return err
	}

	resp, err := eventResponse(event)
	if err != nil {
		return err
	}
	recordChange(c, models.AuditActionCreate, resourceEvent, event.ID, nil, resp)
	return c.JSON(http.StatusCreated, resp)
}

// GetEventHandler handles GET /events/:eventId
func GetEventHandler(c echo.Context) error {
	event, err := eventFromPath(c)
	if err != nil {
		return err
	}
	resp, err := eventResponse(event)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateEventHandler handles PUT and PATCH /events/:eventId
func UpdateEventHandler(c echo.Context) error {
	event, err := eventFromPath(c)
	if err != nil {
		return err
	}

	var req dto.EventRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	old, err := eventResponse(event)
	if err != nil {
		return err
	}
	if err := services.UpdateEvent(db.DB, event, &req, isPartial(c)); err != nil {
		return err
	}

	resp, err := eventResponse(event)
	if err != nil {
		return err
	}
	recordChange(c, models.AuditActionUpdate, resourceEvent, event.ID, old, resp)
	return c.JSON(http.StatusOK, resp)
}

// DeleteEventHandler handles DELETE /events/:eventId
func DeleteEventHandler(c echo.Context) error {
	event, err := eventFromPath(c)
	if err != nil {
		return err
	}

	old, err := eventResponse(event)
	if err != nil {
		return err
	}
	if err := services.DeleteEvent(db.DB, event); err != nil {
		return err
	}

	recordChange(c, models.AuditActionDelete, resourceEvent, event.ID, old, nil)
	return c.NoContent(http.StatusNoContent)
}
