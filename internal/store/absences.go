package store

import "shift-planner/internal/models"

// Absences returns every absence in insertion order.
func (s *Store) Absences() ([]models.Absence, error) {
	absences, _, err := readList[models.Absence](s, keyAbsences)
	return absences, err
}

// AbsencesByShift returns the absences filed against one shift.
func (s *Store) AbsencesByShift(shiftID string) ([]models.Absence, error) {
	absences, err := s.Absences()
	if err != nil {
		return nil, err
	}
	filed := make([]models.Absence, 0, len(absences))
	for _, a := range absences {
		if a.ShiftID == shiftID {
			filed = append(filed, a)
		}
	}
	return filed, nil
}

// AddAbsence files an absence against a shift with status pending. An empty
// replacementUserID is stored as no replacement. The shift id is not checked
// against the shift collection.
func (s *Store) AddAbsence(shiftID, reason, replacementUserID string) (*models.Absence, error) {
	absences, err := s.Absences()
	if err != nil {
		return nil, err
	}

	a := models.Absence{
		ID:        s.newID(),
		ShiftID:   shiftID,
		Reason:    reason,
		Status:    models.StatusPending,
		CreatedAt: s.now(),
	}
	if replacementUserID != "" {
		a.ReplacementUserID = &replacementUserID
	}
	absences = append(absences, a)
	if err := writeList(s, keyAbsences, absences); err != nil {
		return nil, err
	}
	return &a, nil
}

// AbsenceUpdate names the fields UpdateAbsence may change. Nil fields are
// left untouched; a pointer to the empty string clears the replacement.
type AbsenceUpdate struct {
	Status            *models.RequestStatus
	Reason            *string
	ReplacementUserID *string
}

// UpdateAbsence applies a partial update and returns the updated absence, or
// nil when no absence has the id.
func (s *Store) UpdateAbsence(id string, upd AbsenceUpdate) (*models.Absence, error) {
	absences, err := s.Absences()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, a := range absences {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	if upd.Status != nil {
		absences[idx].Status = *upd.Status
	}
	if upd.Reason != nil {
		absences[idx].Reason = *upd.Reason
	}
	if upd.ReplacementUserID != nil {
		if *upd.ReplacementUserID == "" {
			absences[idx].ReplacementUserID = nil
		} else {
			rid := *upd.ReplacementUserID
			absences[idx].ReplacementUserID = &rid
		}
	}
	if err := writeList(s, keyAbsences, absences); err != nil {
		return nil, err
	}

	a := absences[idx]
	return &a, nil
}
