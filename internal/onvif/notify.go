package onvif

import (
	"encoding/xml"
	"fmt"
	"time"
)

// MotionNotification is the extracted result of one WS-Notification
// envelope that matched the motion topic.
type MotionNotification struct {
	IsMotion            bool
	UtcTime             time.Time
	SubscriptionAddress string
}

// notifyEnvelope is a permissive subset of the WS-Notification wrapper:
// it does not require the exact namespace prefixes a given camera firmware
// uses, matching common field names across manufacturers.
type notifyEnvelope struct {
	Body struct {
		Notify struct {
			NotificationMessage []notificationMessage `xml:"NotificationMessage"`
		} `xml:"Notify"`
	} `xml:"Body"`
}

type notificationMessage struct {
	SubscriptionReference struct {
		Address string `xml:"Address"`
	} `xml:"SubscriptionReference"`
	Topic struct {
		Value string `xml:",chardata"`
	} `xml:"Topic"`
	Message struct {
		Message struct {
			UtcTime string `xml:"UtcTime,attr"`
			Data    struct {
				SimpleItem []struct {
					Name  string `xml:"Name,attr"`
					Value string `xml:"Value,attr"`
				} `xml:"SimpleItem"`
			} `xml:"Data"`
		} `xml:"Message"`
	} `xml:"Message"`
}

const motionTopic = "tns1:RuleEngine/CellMotionDetector/Motion"

// ParseNotification parses a SOAP-wrapped WS-Notification body and returns
// the motion notification if one of its messages matches the motion topic.
// Returns (nil, nil) when the envelope is well-formed but carries no motion
// message, matching the handler's "filter to topic" behavior.
func ParseNotification(body []byte) (*MotionNotification, error) {
	var env notifyEnvelope
	if err := xml.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parse ws-notification envelope: %w", err)
	}

	for _, msg := range env.Body.Notify.NotificationMessage {
		if msg.Topic.Value != motionTopic {
			continue
		}

		result := &MotionNotification{
			SubscriptionAddress: msg.SubscriptionReference.Address,
		}
		if t := msg.Message.Message.UtcTime; t != "" {
			if parsed, err := time.Parse(time.RFC3339, t); err == nil {
				result.UtcTime = parsed
			}
		}
		for _, item := range msg.Message.Message.Data.SimpleItem {
			if item.Name == "IsMotion" {
				result.IsMotion = item.Value == "true" || item.Value == "1"
			}
		}
		return result, nil
	}
	return nil, nil
}
