package geocoding

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/midpoint-service/internal/domain"
	"github.com/midpoint-service/internal/pkg/errors"
)

// envelopeShape tells where the service put the element in its answer.
type envelopeShape int

const (
	shapeUnknown envelopeShape = iota
	// {"success": true, "element": {...}}
	shapeElement
	// {"success": true, "elements": {"element": {...}}}
	shapeNestedElements
)

func (s envelopeShape) String() string {
	switch s {
	case shapeElement:
		return "element"
	case shapeNestedElements:
		return "elements.element"
	default:
		return "unknown"
	}
}

// normalizeEnvelope turns either response shape into one PlaceElement.
// operation is used only for error context ("geocode 'Roma'", "reverse").
func normalizeEnvelope(body []byte, operation string) (domain.PlaceElement, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil || top == nil {
		return nil, shapeError(operation, "response is not a JSON object", body)
	}

	var success bool
	if raw, ok := top["success"]; !ok || json.Unmarshal(raw, &success) != nil || !success {
		return nil, shapeError(operation, "service reported an unsuccessful outcome", body)
	}

	shape, raw := detectShape(top)
	if shape == shapeUnknown {
		return nil, shapeError(operation, "neither element nor elements.element present", body)
	}

	element, err := decodeElement(raw)
	if err != nil {
		return nil, shapeError(operation, shape.String()+" is not a JSON object", body)
	}

	return element, nil
}

func detectShape(top map[string]json.RawMessage) (envelopeShape, json.RawMessage) {
	if raw, ok := top["element"]; ok {
		return shapeElement, raw
	}

	if raw, ok := top["elements"]; ok {
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(raw, &nested); err == nil {
			if el, ok := nested["element"]; ok {
				return shapeNestedElements, el
			}
		}
	}

	return shapeUnknown, nil
}

// decodeElement keeps numbers as json.Number so the raw element is passed
// through without float rounding.
func decodeElement(raw json.RawMessage) (domain.PlaceElement, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var element map[string]interface{}
	if err := dec.Decode(&element); err != nil {
		return nil, err
	}
	if element == nil {
		return nil, errors.ErrUnexpectedResponseShape
	}
	return domain.PlaceElement(element), nil
}

// coordinateFromElement extracts element.latitude / element.longitude.
func coordinateFromElement(element domain.PlaceElement, placeName string) (domain.Coordinate, error) {
	lat, err := numericField(element, "latitude")
	if err != nil {
		return domain.Coordinate{}, coordinateError(placeName, "latitude", err)
	}
	lon, err := numericField(element, "longitude")
	if err != nil {
		return domain.Coordinate{}, coordinateError(placeName, "longitude", err)
	}

	coord := domain.Coordinate{Lat: lat, Lon: lon}
	if !coord.Valid() {
		return domain.Coordinate{}, errors.ErrInvalidCoordinate.
			WithMessage("coordinates for '%s' out of range: %f, %f", placeName, lat, lon).
			WithDetails(map[string]interface{}{"input": placeName, "lat": lat, "lon": lon})
	}

	return coord, nil
}

func numericField(element domain.PlaceElement, key string) (float64, error) {
	v, ok := element[key]
	if !ok || v == nil {
		return 0, errMissingField
	}

	var f float64
	var err error
	switch val := v.(type) {
	case json.Number:
		f, err = val.Float64()
	case float64:
		f = val
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(val), 64)
	default:
		return 0, errNotNumeric
	}
	if err != nil {
		return 0, errNotNumeric
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotNumeric
	}
	return f, nil
}

type fieldError string

func (e fieldError) Error() string { return string(e) }

const (
	errMissingField fieldError = "missing"
	errNotNumeric   fieldError = "not numeric"
)

func coordinateError(placeName, field string, cause error) error {
	return errors.ErrInvalidCoordinate.
		WithMessage("%s for '%s' is %v", field, placeName, cause).
		WithDetails(map[string]interface{}{"input": placeName, "field": field}).
		Wrap(cause)
}

func shapeError(operation, reason string, body []byte) error {
	return errors.ErrUnexpectedResponseShape.
		WithMessage("unexpected geocoding response (%s): %s", operation, reason).
		WithDetails(map[string]interface{}{"raw": rawPayload(body)})
}

// rawPayload returns the decoded body for error details, or the text when it is not JSON.
func rawPayload(body []byte) interface{} {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}
