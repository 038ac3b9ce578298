package onvif

import "testing"

const motionEnvelope = `<?xml version="1.0" encoding="UTF-8"?>
<SOAP-ENV:Envelope xmlns:SOAP-ENV="http://www.w3.org/2003/05/soap-envelope" xmlns:tns1="http://www.onvif.org/ver10/topics">
  <SOAP-ENV:Body>
    <Notify>
      <NotificationMessage>
        <SubscriptionReference>
          <Address>http://192.168.1.10/onvif/Events</Address>
        </SubscriptionReference>
        <Topic>tns1:RuleEngine/CellMotionDetector/Motion</Topic>
        <Message>
          <Message UtcTime="2026-07-29T10:00:00Z">
            <Data>
              <SimpleItem Name="IsMotion" Value="true"/>
            </Data>
          </Message>
        </Message>
      </NotificationMessage>
    </Notify>
  </SOAP-ENV:Body>
</SOAP-ENV:Envelope>`

const otherTopicEnvelope = `<?xml version="1.0" encoding="UTF-8"?>
<SOAP-ENV:Envelope xmlns:SOAP-ENV="http://www.w3.org/2003/05/soap-envelope">
  <SOAP-ENV:Body>
    <Notify>
      <NotificationMessage>
        <Topic>tns1:VideoSource/ImageTooBlurry</Topic>
        <Message>
          <Message UtcTime="2026-07-29T10:00:00Z">
            <Data>
              <SimpleItem Name="State" Value="true"/>
            </Data>
          </Message>
        </Message>
      </NotificationMessage>
    </Notify>
  </SOAP-ENV:Body>
</SOAP-ENV:Envelope>`

func TestParseNotificationMatchesMotionTopic(t *testing.T) {
	got, err := ParseNotification([]byte(motionEnvelope))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a non-nil notification for the motion topic")
	}
	if !got.IsMotion {
		t.Error("expected IsMotion to be true")
	}
	if got.SubscriptionAddress != "http://192.168.1.10/onvif/Events" {
		t.Errorf("unexpected subscription address: %q", got.SubscriptionAddress)
	}
	if got.UtcTime.IsZero() {
		t.Error("expected UtcTime to be parsed")
	}
}

func TestParseNotificationIgnoresOtherTopics(t *testing.T) {
	got, err := ParseNotification([]byte(otherTopicEnvelope))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for a non-motion topic, got %+v", got)
	}
}

func TestParseNotificationFalseMotionValue(t *testing.T) {
	const body = `<Envelope><Body><Notify><NotificationMessage>
		<Topic>tns1:RuleEngine/CellMotionDetector/Motion</Topic>
		<Message><Message><Data><SimpleItem Name="IsMotion" Value="false"/></Data></Message></Message>
	</NotificationMessage></Notify></Body></Envelope>`

	got, err := ParseNotification([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a notification even when IsMotion is false")
	}
	if got.IsMotion {
		t.Error("expected IsMotion to be false")
	}
}

func TestParseNotificationRejectsMalformedXML(t *testing.T) {
	_, err := ParseNotification([]byte("<not-even-xml"))
	if err == nil {
		t.Fatal("expected an error for malformed XML")
	}
}
