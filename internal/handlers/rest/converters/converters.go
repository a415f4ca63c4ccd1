package converters

import (
	"github.com/AlekSi/pointer"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
)

func OrderCreateToDomain(req dto.OrderCreate) entities.OrderCreate {
	return entities.OrderCreate{
		SenderName:    req.SenderName,
		SenderPhone:   req.SenderPhone,
		ReceiverName:  req.ReceiverName,
		ReceiverPhone: req.ReceiverPhone,
		ShippingFee:   req.ShippingFee,
		Note:          req.Note,
		Cargo: entities.CargoCreate{
			Name:      req.Cargo.Name,
			Weight:    req.Cargo.Weight,
			Dimension: req.Cargo.Dimension,
		},
		OrderAddress: entities.OrderAddressCreate{
			Address:   req.OrderAddress.Address,
			Longitude: req.OrderAddress.Longitude,
			Latitude:  req.OrderAddress.Latitude,
		},
		DeliveryTypeID: req.DeliveryTypeId,
		SupervisorID:   req.SupervisorId,
	}
}

func OrderToDTO(order *entities.Order) dto.Order {
	result := dto.Order{
		Id:             order.ID,
		SenderName:     order.SenderName,
		SenderPhone:    order.SenderPhone,
		ReceiverName:   order.ReceiverName,
		ReceiverPhone:  order.ReceiverPhone,
		ShippingFee:    order.ShippingFee,
		Note:           order.Note,
		Status:         dto.OrderStatus(order.Status),
		DeliveryTime:   order.DeliveryTime,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
		DeliveryTypeId: order.DeliveryTypeID,
		SupervisorId:   order.SupervisorID,
	}

	if order.Cargo != nil {
		result.Cargo = &dto.Cargo{
			Id:        order.Cargo.ID,
			Name:      order.Cargo.Name,
			Weight:    order.Cargo.Weight,
			Dimension: order.Cargo.Dimension,
		}
	}
	if order.OrderAddress != nil {
		result.OrderAddress = &dto.OrderAddress{
			Id:        order.OrderAddress.ID,
			Address:   order.OrderAddress.Address,
			Longitude: order.OrderAddress.Longitude,
			Latitude:  order.OrderAddress.Latitude,
		}
	}
	return result
}

func OrderPageToDTO(page *entities.OrderPage) dto.OrderPage {
	orders := make([]dto.Order, len(page.Orders))
	for i := range page.Orders {
		orders[i] = OrderToDTO(&page.Orders[i])
	}

	return dto.OrderPage{
		Page:   page.Page,
		Limit:  page.Limit,
		Total:  page.Total,
		Orders: orders,
	}
}

func RoutingRequestToDomain(req dto.RoutingRequest) entities.RoutingRequest {
	return entities.RoutingRequest{
		Coordinates:       req.Coordinates,
		NumVehicles:       req.NumVehicles,
		Depot:             req.Depot,
		Weights:           pointer.Get(req.Weight),
		VehicleWeights:    pointer.Get(req.VehicleWeight),
		Dimensions:        pointer.Get(req.Dimension),
		VehicleDimensions: pointer.Get(req.VehicleDimension),
		MaxTravel:         req.MaxTravel,
	}
}

