package store

import (
	"github.com/sirupsen/logrus"

	"shift-planner/internal/models"
)

// Shifts returns every shift in insertion order.
func (s *Store) Shifts() ([]models.Shift, error) {
	shifts, _, err := readList[models.Shift](s, keyShifts)
	return shifts, err
}

// ShiftsWithUsers joins each shift to its owning user. Shifts whose owner no
// longer exists are dropped from the result; a user delete leaves no stale
// rows visible through this read.
func (s *Store) ShiftsWithUsers() ([]models.ShiftWithUser, error) {
	shifts, err := s.Shifts()
	if err != nil {
		return nil, err
	}
	users, err := s.Users()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	joined := make([]models.ShiftWithUser, 0, len(shifts))
	for _, sh := range shifts {
		u, ok := byID[sh.UserID]
		if !ok {
			continue
		}
		joined = append(joined, models.ShiftWithUser{Shift: sh, Users: u})
	}
	return joined, nil
}

// ShiftsByUser returns the shifts owned by one user.
func (s *Store) ShiftsByUser(userID string) ([]models.Shift, error) {
	shifts, err := s.Shifts()
	if err != nil {
		return nil, err
	}
	owned := make([]models.Shift, 0, len(shifts))
	for _, sh := range shifts {
		if sh.UserID == userID {
			owned = append(owned, sh)
		}
	}
	return owned, nil
}

// ShiftByID returns the shift with the given id, or nil when absent.
func (s *Store) ShiftByID(id string) (*models.Shift, error) {
	shifts, err := s.Shifts()
	if err != nil {
		return nil, err
	}
	for _, sh := range shifts {
		if sh.ID == id {
			sh := sh
			return &sh, nil
		}
	}
	return nil, nil
}

// PendingShifts returns the joined shifts still waiting for a decision.
func (s *Store) PendingShifts() ([]models.ShiftWithUser, error) {
	joined, err := s.ShiftsWithUsers()
	if err != nil {
		return nil, err
	}
	pending := make([]models.ShiftWithUser, 0, len(joined))
	for _, sh := range joined {
		if sh.Status == models.StatusPending {
			pending = append(pending, sh)
		}
	}
	return pending, nil
}

// ShiftsForDate returns the joined shifts scheduled on one calendar day.
func (s *Store) ShiftsForDate(date string) ([]models.ShiftWithUser, error) {
	joined, err := s.ShiftsWithUsers()
	if err != nil {
		return nil, err
	}
	day := make([]models.ShiftWithUser, 0, len(joined))
	for _, sh := range joined {
		if sh.Date == date {
			day = append(day, sh)
		}
	}
	return day, nil
}

// AddShift schedules a shift for a user. Fails with ErrDuplicateShiftForDate
// when the user already has a shift on that exact date, whatever its type or
// status. An empty status defaults to pending.
func (s *Store) AddShift(userID, date string, shiftType models.ShiftType, status models.RequestStatus) (*models.Shift, error) {
	shifts, err := s.Shifts()
	if err != nil {
		return nil, err
	}
	for _, sh := range shifts {
		if sh.UserID == userID && sh.Date == date {
			return nil, ErrDuplicateShiftForDate
		}
	}

	if status == "" {
		status = models.StatusPending
	}
	sh := models.Shift{
		ID:        s.newID(),
		UserID:    userID,
		Date:      date,
		ShiftType: shiftType,
		Status:    status,
		CreatedAt: s.now(),
	}
	shifts = append(shifts, sh)
	if err := writeList(s, keyShifts, shifts); err != nil {
		return nil, err
	}
	return &sh, nil
}

// ShiftUpdate names the fields UpdateShift may change. Nil fields are left
// untouched.
type ShiftUpdate struct {
	Status    *models.RequestStatus
	ShiftType *models.ShiftType
	Date      *string
}

// UpdateShift applies a partial update and returns the updated shift, or nil
// when no shift has the id. A date change is not re-checked against the
// one-shift-per-day rule; only AddShift enforces it.
func (s *Store) UpdateShift(id string, upd ShiftUpdate) (*models.Shift, error) {
	shifts, err := s.Shifts()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, sh := range shifts {
		if sh.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	if upd.Status != nil {
		shifts[idx].Status = *upd.Status
	}
	if upd.ShiftType != nil {
		shifts[idx].ShiftType = *upd.ShiftType
	}
	if upd.Date != nil {
		shifts[idx].Date = *upd.Date
	}
	if err := writeList(s, keyShifts, shifts); err != nil {
		return nil, err
	}

	sh := shifts[idx]
	return &sh, nil
}

// DeleteShift removes the shift and every absence filed against it.
func (s *Store) DeleteShift(id string) error {
	shifts, err := s.Shifts()
	if err != nil {
		return err
	}
	kept := make([]models.Shift, 0, len(shifts))
	for _, sh := range shifts {
		if sh.ID != id {
			kept = append(kept, sh)
		}
	}
	if err := writeList(s, keyShifts, kept); err != nil {
		return err
	}

	absences, err := s.Absences()
	if err != nil {
		return err
	}
	keptAbs := make([]models.Absence, 0, len(absences))
	removed := 0
	for _, a := range absences {
		if a.ShiftID == id {
			removed++
			continue
		}
		keptAbs = append(keptAbs, a)
	}
	if err := writeList(s, keyAbsences, keptAbs); err != nil {
		return err
	}
	if removed > 0 {
		s.logger.WithFields(logrus.Fields{
			"shift_id": id,
			"absences": removed,
		}).Info("cascade deleted absences of removed shift")
	}
	return nil
}

// WorkerStats summarizes a worker's approved shifts. Every approved shift
// counts as eight hours.
type WorkerStats struct {
	ShiftCount int
	Hours      int
}

// StatsForWorker counts the user's approved shifts.
func (s *Store) StatsForWorker(userID string) (WorkerStats, error) {
	shifts, err := s.Shifts()
	if err != nil {
		return WorkerStats{}, err
	}
	count := 0
	for _, sh := range shifts {
		if sh.UserID == userID && sh.Status == models.StatusApproved {
			count++
		}
	}
	return WorkerStats{ShiftCount: count, Hours: count * 8}, nil
}
