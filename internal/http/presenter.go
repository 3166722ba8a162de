package http

import (
	"github.com/guttosm/dispatch-service/internal/composition"
	"github.com/guttosm/dispatch-service/internal/domain/dto"
	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/i18n"
	"github.com/guttosm/dispatch-service/internal/service"
)

var alertKeys = map[composition.Status]string{
	composition.StatusWeightExceeded: i18n.AlertKeyOverweight,
	composition.StatusVolumeExceeded: i18n.AlertKeyTruckFull,
	composition.StatusBothExceeded:   i18n.AlertKeyFullAndOverweight,
}

var warningKeys = map[string]string{
	service.WarningDraftRestoreFailed: i18n.WarningKeyDraftRestoreFailed,
	service.WarningDraftSyncFailed:    i18n.WarningKeyDraftSyncFailed,
}

func compositionResponse(v service.SessionView, locale string) dto.CompositionResponse {
	resp := dto.CompositionResponse{
		SessionID:        v.SessionID,
		State:            string(v.State),
		VehicleID:        v.VehicleID,
		Vehicle:          v.Vehicle,
		VehicleKnown:     v.VehicleKnown,
		VehicleAvailable: v.VehicleAvailable,
		HeldByOrder:      v.HeldBy,
		Items:            lineItemResponses(v.Items),
		Pending:          v.Pending,
		Totals:           totalsResponse(v.Totals),
	}
	if v.Capacity != nil {
		resp.Capacity = capacityResponse(*v.Capacity, locale)
	}
	for _, code := range v.Warnings {
		resp.Warnings = append(resp.Warnings, dto.WarningResponse{
			Code:    code,
			Message: i18n.GetTranslator().Translate(warningKeys[code], locale),
		})
	}
	return resp
}

func capacityResponse(r composition.CapacityReport, locale string) *dto.CapacityResponse {
	resp := &dto.CapacityResponse{
		WeightPct: r.WeightPct,
		VolumePct: r.VolumePct,
		Status:    string(r.Status),
	}
	if key, ok := alertKeys[r.Status]; ok {
		resp.Alert = i18n.GetTranslator().Translate(key, locale)
	}
	return resp
}

func lineItemResponses(items []model.LineItem) []dto.LineItemResponse {
	out := make([]dto.LineItemResponse, len(items))
	for i, item := range items {
		out[i] = dto.LineItemResponse{
			LineItem:   item,
			LineWeight: item.Weight(),
			LineVolume: item.Volume(),
			LineValue:  item.Value(),
		}
	}
	return out
}

func totalsResponse(t model.Totals) dto.TotalsResponse {
	return dto.TotalsResponse{Weight: t.Weight, Volume: t.Volume, Value: t.Value}
}

func vehicleResponses(vehicles []service.VehicleStatus) []dto.VehicleResponse {
	out := make([]dto.VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		out[i] = dto.VehicleResponse{
			Vehicle:     v.Vehicle,
			Available:   v.Available,
			HeldByOrder: v.HeldBy,
		}
	}
	return out
}
