package mailer

import (
	"bytes"
	"html/template"
	"strconv"
)

type BookingEmailData struct {
	CustomerName  string
	CustomerEmail string
	PackageName   string
	Date          string
	StartTime     string
	EndTime       string
	Price         float64
	Duration      float64
	Message       string
	AdminNotes    string
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var funcs = template.FuncMap{"number": number}

const layoutOpen = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`

var (
	adminRequestTmpl = template.Must(template.New("admin_request").Funcs(funcs).Parse(layoutOpen + `
<h2 style="color: #333;">New Booking Request</h2>
<div style="background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
<h3 style="margin-top: 0;">Booking Details</h3>
<p><strong>Package:</strong> {{.PackageName}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Time:</strong> {{.StartTime}} - {{.EndTime}} ({{number .Duration}} hours)</p>
<p><strong>Price:</strong> ${{number .Price}}</p>
</div>
<div style="background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
<h3 style="margin-top: 0;">Customer Information</h3>
<p><strong>Name:</strong> {{.CustomerName}}</p>
<p><strong>Email:</strong> {{.CustomerEmail}}</p>
{{if .Message}}<p><strong>Message:</strong> {{.Message}}</p>{{end}}
</div>
<p>Please log in to your admin panel to approve or deny this request.</p>
</div>`))

	customerRequestTmpl = template.Must(template.New("customer_request").Funcs(funcs).Parse(layoutOpen + `
<h2 style="color: #333;">Booking Request Received</h2>
<p>Hi {{.CustomerName}},</p>
<p>Thank you for your booking request! We've received your request and will review it shortly.</p>
<div style="background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
<h3 style="margin-top: 0;">Your Booking Details</h3>
<p><strong>Package:</strong> {{.PackageName}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Time:</strong> {{.StartTime}} - {{.EndTime}}</p>
<p><strong>Duration:</strong> {{number .Duration}} hours</p>
<p><strong>Price:</strong> ${{number .Price}}</p>
</div>
<p>You'll receive another email once we've reviewed your request.</p>
<p>Best regards,<br>Your Photography Team</p>
</div>`))

	approvedTmpl = template.Must(template.New("approved").Funcs(funcs).Parse(layoutOpen + `
<h2 style="color: #22c55e;">Booking Approved!</h2>
<p>Hi {{.CustomerName}},</p>
<p>Great news! Your booking request has been approved.</p>
<div style="background: #dcfce7; border: 2px solid #22c55e; padding: 20px; border-radius: 8px; margin: 20px 0;">
<h3 style="margin-top: 0; color: #15803d;">Confirmed Booking Details</h3>
<p><strong>Package:</strong> {{.PackageName}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Time:</strong> {{.StartTime}} - {{.EndTime}}</p>
<p><strong>Duration:</strong> {{number .Duration}} hours</p>
<p><strong>Price:</strong> ${{number .Price}}</p>
</div>
{{if .AdminNotes}}<div style="background: #f0f9ff; border-left: 4px solid #0ea5e9; padding: 15px; margin: 20px 0;">
<h4 style="margin-top: 0;">Additional Notes:</h4>
<p>{{.AdminNotes}}</p>
</div>{{end}}
<p>We're looking forward to working with you! If you have any questions, please don't hesitate to contact us.</p>
<p>Best regards,<br>Your Photography Team</p>
</div>`))

	deniedTmpl = template.Must(template.New("denied").Funcs(funcs).Parse(layoutOpen + `
<h2 style="color: #ef4444;">Booking Request Update</h2>
<p>Hi {{.CustomerName}},</p>
<p>Thank you for your interest in our services. Unfortunately, we're unable to accommodate your booking request at this time.</p>
<div style="background: #fef2f2; border: 2px solid #ef4444; padding: 20px; border-radius: 8px; margin: 20px 0;">
<h3 style="margin-top: 0; color: #dc2626;">Requested Booking Details</h3>
<p><strong>Package:</strong> {{.PackageName}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Time:</strong> {{.StartTime}} - {{.EndTime}}</p>
</div>
{{if .AdminNotes}}<div style="background: #f0f9ff; border-left: 4px solid #0ea5e9; padding: 15px; margin: 20px 0;">
<h4 style="margin-top: 0;">Reason:</h4>
<p>{{.AdminNotes}}</p>
</div>{{end}}
<p>Please feel free to check our availability for other dates or contact us directly to discuss alternative options.</p>
<p>Best regards,<br>Your Photography Team</p>
</div>`))
)

func render(t *template.Template, data *BookingEmailData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func packageName(data *BookingEmailData) string {
	if data.PackageName == "" {
		return "Unknown Package"
	}
	return data.PackageName
}

// BookingRequestAdmin renders the notice sent to the studio for a new request.
func BookingRequestAdmin(data BookingEmailData) (subject string, body string, err error) {
	data.PackageName = packageName(&data)
	body, err = render(adminRequestTmpl, &data)
	return "New Booking Request - " + data.PackageName, body, err
}

func BookingRequestCustomer(data BookingEmailData) (subject string, body string, err error) {
	data.PackageName = packageName(&data)
	body, err = render(customerRequestTmpl, &data)
	return "Booking Request Received", body, err
}

func BookingApproved(data BookingEmailData) (subject string, body string, err error) {
	data.PackageName = packageName(&data)
	body, err = render(approvedTmpl, &data)
	return "Booking Approved!", body, err
}

func BookingDenied(data BookingEmailData) (subject string, body string, err error) {
	data.PackageName = packageName(&data)
	body, err = render(deniedTmpl, &data)
	return "Booking Request Update", body, err
}
