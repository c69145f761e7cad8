package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weather-report/internal/report"
	"weather-report/internal/store"
	"weather-report/internal/units"
)

var validate = validator.New()

// RegisterRoutes wires the report endpoints into the Fiber app. Every view is
// computed on demand from the latest stored run; the pipeline itself holds no
// state between requests.
func RegisterRoutes(app *fiber.App, runs *store.RunStore, windUnit units.WindUnit) {
	v1 := app.Group("/api/v1")

	v1.Get("/report", func(c *fiber.Ctx) error {
		table, fetchedAt, err := latestTable(runs, windUnit)
		if err != nil {
			return err
		}
		return c.JSON(tablePayload(fetchedAt, table))
	})

	v1.Get("/report/rankings", func(c *fiber.Ctx) error {
		var req rankingQuery
		req.By = c.Query("by")
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		table, fetchedAt, err := latestTable(runs, windUnit)
		if err != nil {
			return err
		}

		if req.By == "temperature" {
			table = table.RankByTemperature()
		} else {
			table = table.RankByHumidity()
		}
		payload := tablePayload(fetchedAt, table)
		payload["ranked_by"] = req.By
		return c.JSON(payload)
	})

	v1.Get("/report/stats", func(c *fiber.Ctx) error {
		table, fetchedAt, err := latestTable(runs, windUnit)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"fetched_at": fetchedAt,
			"summaries":  table.Describe(),
		})
	})

	v1.Get("/report/warmest", func(c *fiber.Ctx) error {
		raw := c.Query("min_temp_c")
		if raw == "" {
			return fiber.NewError(fiber.StatusBadRequest, "min_temp_c query parameter is required")
		}
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "min_temp_c must be a number")
		}

		table, fetchedAt, err := latestTable(runs, windUnit)
		if err != nil {
			return err
		}
		payload := tablePayload(fetchedAt, table.WarmerThan(threshold))
		payload["min_temp_c"] = threshold
		return c.JSON(payload)
	})

	v1.Get("/report/history", func(c *fiber.Ctx) error {
		var req historyQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		history, err := runs.Range(req.From, req.To)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no report runs for requested range")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read report history")
		}

		payloads := make([]fiber.Map, 0, len(history))
		for _, run := range history {
			table, err := report.Normalize(run.Records, windUnit)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "failed to normalize report run")
			}
			payloads = append(payloads, tablePayload(run.FetchedAt, table))
		}
		return c.JSON(fiber.Map{
			"from": req.From,
			"to":   req.To,
			"runs": payloads,
		})
	})
}

func latestTable(runs *store.RunStore, windUnit units.WindUnit) (report.Table, time.Time, error) {
	run, err := runs.Latest()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return report.Table{}, time.Time{}, fiber.NewError(fiber.StatusNotFound, "no weather report available yet")
		}
		return report.Table{}, time.Time{}, fiber.NewError(fiber.StatusInternalServerError, "failed to read weather report")
	}

	table, err := report.Normalize(run.Records, windUnit)
	if err != nil {
		return report.Table{}, time.Time{}, fiber.NewError(fiber.StatusInternalServerError, "failed to normalize weather report")
	}
	return table, run.FetchedAt, nil
}

func tablePayload(fetchedAt time.Time, table report.Table) fiber.Map {
	return fiber.Map{
		"fetched_at": fetchedAt,
		"columns":    table.Columns(),
		"rows":       table.Records(),
	}
}

// rankingQuery holds query parameters for the rankings endpoint.
type rankingQuery struct {
	By string `validate:"required,oneof=temperature humidity"`
}

// historyQuery holds query parameters for the history endpoint.
type historyQuery struct {
	From time.Time `validate:"required"`
	To   time.Time `validate:"required,gtefield=From"`
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	from, err := parseTime(fromStr)
	if err != nil {
		return err
	}
	to, err := parseTime(toStr)
	if err != nil {
		return err
	}

	h.From = from
	h.To = to
	return nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
