package repository

import (
	"context"
	"errors"

	"mentorhub/internal/domain"

	"gorm.io/gorm"
)

// ErrSlotUnavailable is returned when the atomic claim matches zero
// rows: the period is already booked or gone.
var ErrSlotUnavailable = errors.New("availability period is already booked")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateBookedSession performs the whole booking mutation in one
// transaction:
//
//  1. conditionally claim the availability period (UPDATE ... WHERE the
//     status is not already "booked"); zero rows affected means someone
//     else won the slot and the caller gets ErrSlotUnavailable,
//  2. insert the session row,
//  3. shrink the claimed row to the booked window and insert the open
//     segments around it.
//
// The conditional claim is what makes concurrent bookings of the same
// slot safe: exactly one transaction sees RowsAffected == 1. The
// booked segment keeps the original row's id, so a late request for
// the same slot still sees a "booked" period rather than a missing one.
func (r *BookingRepository) CreateBookedSession(
	ctx context.Context,
	slotID int64,
	session *domain.MentoringSession,
	replacements []domain.AvailabilityPeriod,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claim := tx.Model(&availabilityPeriodModel{}).
			Where("id = ? AND lower(trim(status)) <> ?", slotID, domain.PeriodBooked).
			Update("status", domain.PeriodBooked)
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return ErrSlotUnavailable
		}

		sm := toSessionModel(session)
		if err := tx.Create(&sm).Error; err != nil {
			return err
		}
		*session = *toDomainSession(sm)

		for i := range replacements {
			if replacements[i].Status == domain.PeriodBooked {
				upd := tx.Model(&availabilityPeriodModel{}).
					Where("id = ?", slotID).
					Updates(map[string]any{
						"start_time": replacements[i].StartTime,
						"end_time":   replacements[i].EndTime,
					})
				if upd.Error != nil {
					return upd.Error
				}
				replacements[i].ID = slotID
				continue
			}

			m := toPeriodModel(replacements[i])
			m.ID = 0
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			replacements[i] = toDomainPeriod(m)
		}

		return nil
	})
}
