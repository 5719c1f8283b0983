package service

import (
	"context"
	"strings"
	"sync"

	"github.com/futuristic/perceptronx/internal/adapter"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/validators"
	"github.com/futuristic/perceptronx/models"
)

// AllSpecialties is the filter value that disables specialty filtering.
const AllSpecialties = "All Specialties"

type directoryService struct {
	adapter   adapter.ResourceClient
	validator validators.Validator
	logger    *logger.Logger

	// mu guards the directory cache. A fetched directory is reused for
	// every subsequent List until Invalidate drops it, so typing in a
	// search field filters in memory instead of refetching.
	mu     sync.Mutex
	cache  []models.TherapistSummary
	cached bool
}

func NewDirectoryService(resourceClient adapter.ResourceClient, validator validators.Validator, logger *logger.Logger) DirectoryService {
	return &directoryService{
		adapter:   resourceClient,
		validator: validator,
		logger:    logger,
	}
}

// List filters the directory locally. The server has no search parameters;
// the full directory is fetched once, cached, and every later List call
// filters the cached copy so typing latency stays off the network. Invalidate
// drops the cache when the caller wants fresh data.
func (d *directoryService) List(ctx context.Context, query, specialty string) ([]models.TherapistSummary, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.cached {
		summaries, err := d.adapter.ListTherapists(ctx)
		if err != nil {
			return nil, mapAdapterError(err)
		}
		d.cache = summaries
		d.cached = true
	}

	return filterTherapists(d.cache, query, specialty), nil
}

// Invalidate drops the cached directory; the next List refetches it.
func (d *directoryService) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cache = nil
	d.cached = false
}

func (d *directoryService) Get(ctx context.Context, id int) (models.Therapist, error) {
	therapist, err := d.adapter.GetTherapist(ctx, id)
	if err != nil {
		return models.Therapist{}, mapAdapterError(err)
	}

	return therapist, nil
}

// Availability fetches the therapist's slots and groups them by date,
// preserving the server's ordering within and across days.
func (d *directoryService) Availability(ctx context.Context, therapistID int) ([]models.DaySchedule, error) {
	slots, err := d.adapter.GetAvailability(ctx, therapistID)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return groupSlotsByDate(slots), nil
}

func (d *directoryService) Rate(ctx context.Context, therapistID int, req models.RatingRequest) error {
	if err := d.validator.Validate(ctx, req); err != nil {
		return err
	}

	if err := d.adapter.RateTherapist(ctx, therapistID, req); err != nil {
		return mapAdapterError(err)
	}

	return nil
}

func (d *directoryService) Profile(ctx context.Context) (models.Profile, error) {
	profile, err := d.adapter.GetUserInfo(ctx)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	return profile, nil
}

// filterTherapists applies the free-text name query and the specialty
// filter. Matching is case-insensitive; the specialty matches on substring
// so "Therapy" finds both family and cognitive behavioral therapy.
func filterTherapists(summaries []models.TherapistSummary, query, specialty string) []models.TherapistSummary {
	query = strings.ToLower(strings.TrimSpace(query))
	filterSpecialty := specialty != "" && specialty != AllSpecialties

	filtered := make([]models.TherapistSummary, 0, len(summaries))
	for _, summary := range summaries {
		if query != "" && !strings.Contains(strings.ToLower(summary.Name), query) {
			continue
		}
		if filterSpecialty && !hasSpecialty(summary.Specialties, specialty) {
			continue
		}
		filtered = append(filtered, summary)
	}

	return filtered
}

func hasSpecialty(specialties []string, wanted string) bool {
	wanted = strings.ToLower(wanted)
	for _, s := range specialties {
		if strings.Contains(strings.ToLower(s), wanted) {
			return true
		}
	}
	return false
}

// groupSlotsByDate builds the display grouping, one DaySchedule per
// distinct date in first-seen order.
func groupSlotsByDate(slots []models.TimeSlot) []models.DaySchedule {
	var days []models.DaySchedule
	index := make(map[string]int)

	for _, slot := range slots {
		i, ok := index[slot.Date]
		if !ok {
			i = len(days)
			index[slot.Date] = i
			days = append(days, models.DaySchedule{Date: slot.Date})
		}
		days[i].Slots = append(days[i].Slots, slot)
	}

	return days
}
