package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-booking-platform/internal/delivery/dto"
	"go-booking-platform/internal/delivery/http/middleware"
	"go-booking-platform/internal/domain/entity"
	"go-booking-platform/internal/usecase"
	"go-booking-platform/pkg/validator"

	"github.com/google/uuid"
)

type stubPackageUsecase struct {
	usecase.PackageUsecase
	usage    *entity.SessionUsage
	purchase *entity.PackagePurchase
	err      error
}

func (s *stubPackageUsecase) ConsumeSession(_ context.Context, _ uuid.UUID, _ *dto.ConsumeSessionRequest) (*entity.SessionUsage, *entity.PackagePurchase, error) {
	return s.usage, s.purchase, s.err
}

func TestConsumeSession_ReturnsUsageAndPurchase(t *testing.T) {
	purchaseID := uuid.New()
	appointmentID := uuid.New()
	stub := &stubPackageUsecase{
		usage: &entity.SessionUsage{
			ID:            uuid.New(),
			PurchaseID:    purchaseID,
			AppointmentID: appointmentID,
			SessionNumber: 3,
		},
		purchase: &entity.PackagePurchase{
			ID:                purchaseID,
			TotalSessions:     10,
			UsedSessions:      3,
			RemainingSessions: 7,
			Status:            entity.PurchaseStatusActive,
			PaymentStatus:     entity.PaymentStatusPaid,
		},
	}
	h := NewPackageHandler(stub, validator.NewValidator())

	body, _ := json.Marshal(dto.ConsumeSessionRequest{
		PurchaseID:    purchaseID.String(),
		AppointmentID: appointmentID.String(),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/purchases/consume", bytes.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, uuid.New()))
	rec := httptest.NewRecorder()

	h.ConsumeSession(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data dto.ConsumeSessionResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.SessionUsage == nil || envelope.Data.SessionUsage.SessionNumber != 3 {
		t.Errorf("session usage missing or wrong: %+v", envelope.Data.SessionUsage)
	}
	if envelope.Data.Purchase == nil || envelope.Data.Purchase.RemainingSessions != 7 {
		t.Errorf("purchase counters missing or wrong: %+v", envelope.Data.Purchase)
	}
}

func TestWriteLedgerErrorStatuses(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{usecase.ErrPurchaseNotFound, http.StatusNotFound},
		{usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{usecase.ErrNoUsageFound, http.StatusNotFound},
		{usecase.ErrPurchaseNotOwned, http.StatusForbidden},
		{usecase.ErrPurchaseNotActive, http.StatusConflict},
		{usecase.ErrPurchaseExpired, http.StatusConflict},
		{usecase.ErrNoRemainingSessions, http.StatusConflict},
		{usecase.ErrSessionAlreadyConsumed, http.StatusConflict},
	}

	h := &PackageHandler{}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		h.writeLedgerError(rec, c.err)
		if rec.Code != c.want {
			t.Errorf("%v -> %d, want %d", c.err, rec.Code, c.want)
		}
	}
}
