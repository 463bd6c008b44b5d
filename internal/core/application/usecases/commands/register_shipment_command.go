package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrRegisterShipmentCommandIsNotConstructed = errors.New(
		"RegisterShipmentCommand must be created via NewRegisterShipmentCommand constructor",
	)
)

// RegisterShipmentCommand represents a request to register a new cargo for
// tracking. Carries the business code, the parties involved, the origin and
// destination addresses as free text, and the schedule.
type RegisterShipmentCommand struct { //nolint:recvcheck //using for validation
	cargoCode   string
	clientID    kernel.UUID
	operatorID  kernel.UUID
	originText  string
	destText    string
	departureAt time.Time
	forecastAt  time.Time

	guard guard.ConstructorGuard
}

// NewRegisterShipmentCommand creates a command to register a new cargo.
// Validates that the cargo code and addresses are not empty, the party
// identifiers are valid, and both dates are present. The forecast/departure
// ordering rule belongs to the Shipment aggregate and is checked there.
func NewRegisterShipmentCommand(
	cargoCode string,
	clientID kernel.UUID,
	operatorID kernel.UUID,
	originText string,
	destText string,
	departureAt time.Time,
	forecastAt time.Time,
) (RegisterShipmentCommand, error) {
	cmd := RegisterShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCargoCode(cargoCode),
		cmd.setClientID(clientID),
		cmd.setOperatorID(operatorID),
		cmd.setOriginText(originText),
		cmd.setDestText(destText),
		cmd.setSchedule(departureAt, forecastAt),
	); err != nil {
		return RegisterShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterShipmentCommandIsNotConstructed)
}

// CargoCode returns the business code for the cargo.
func (c RegisterShipmentCommand) CargoCode() string {
	return c.cargoCode
}

// ClientID returns the identifier of the cargo owner.
func (c RegisterShipmentCommand) ClientID() kernel.UUID {
	return c.clientID
}

// OperatorID returns the identifier of the responsible operator.
func (c RegisterShipmentCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// OriginText returns the free-text origin address.
func (c RegisterShipmentCommand) OriginText() string {
	return c.originText
}

// DestText returns the free-text destination address.
func (c RegisterShipmentCommand) DestText() string {
	return c.destText
}

// DepartureAt returns the scheduled departure date.
func (c RegisterShipmentCommand) DepartureAt() time.Time {
	return c.departureAt
}

// ForecastAt returns the estimated delivery date.
func (c RegisterShipmentCommand) ForecastAt() time.Time {
	return c.forecastAt
}

func (c *RegisterShipmentCommand) setCargoCode(cargoCode string) error {
	if cargoCode == "" {
		return errs.NewValueIsRequiredError("codigoCarga")
	}
	c.cargoCode = cargoCode
	return nil
}

func (c *RegisterShipmentCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clienteId", err)
	}
	c.clientID = clientID
	return nil
}

func (c *RegisterShipmentCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("operadorId", err)
	}
	c.operatorID = operatorID
	return nil
}

func (c *RegisterShipmentCommand) setOriginText(originText string) error {
	if originText == "" {
		return errs.NewValueIsRequiredError("origemTexto")
	}
	c.originText = originText
	return nil
}

func (c *RegisterShipmentCommand) setDestText(destText string) error {
	if destText == "" {
		return errs.NewValueIsRequiredError("destinoTexto")
	}
	c.destText = destText
	return nil
}

func (c *RegisterShipmentCommand) setSchedule(departureAt, forecastAt time.Time) error {
	if departureAt.IsZero() {
		return errs.NewValueIsRequiredError("dataSaida")
	}
	if forecastAt.IsZero() {
		return errs.NewValueIsRequiredError("previsaoEntrega")
	}

	c.departureAt = departureAt
	c.forecastAt = forecastAt
	return nil
}
