package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Subscribers    int    `json:"subscribers"`
	ClassifierType string `json:"classifier_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	classifierType := "none"
	if s.classifier != nil {
		classifierType = "classifier"
		if comp, ok := s.classifier.(introspection.Component); ok {
			classifierType = comp.ComponentType()
		}
	}

	return ServiceState{
		Subscribers:    s.broker.Len(),
		ClassifierType: classifierType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
