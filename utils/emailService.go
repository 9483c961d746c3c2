package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"janseva/config"
	"janseva/models"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	cfg := config.AppConfig

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Ration Card Department <%s>\r\n", cfg.EmailSender)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", cfg.EmailSender, cfg.Password, cfg.SMTPHost)

	err := smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, cfg.EmailSender, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	fmt.Println("Email sent successfully to", strings.Join(to, ","))
	return nil
}

// HTML wrapper shared by all portal mails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #4361ee; padding: 30px; text-align: center; }
			.header h1 { color: #ffffff; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #2c3e50; line-height: 1.6; }
			.content h2 { color: #2c3e50; margin-top: 0; }
			.footer { background-color: #f6f6f6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #e0e0e0; }
			.info-box { background: #e8f0fe; padding: 15px; border-radius: 4px; border-left: 4px solid #27ae60; margin: 20px 0; }
			.status-badge { display: inline-block; padding: 4px 8px; border-radius: 4px; font-size: 12px; font-weight: bold; color: white; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>JanSEVA RATION PORTAL</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				Government of Maharashtra &mdash; Ration Card Department<br>
				This is an automated email, please do not reply.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendOTPEmail delivers a login code. Unlike the workflow mails this one is
// sent synchronously: the login endpoint must report delivery failure.
func SendOTPEmail(otp, email string) error {
	subject := "Your OTP for JanSEVA Login"
	body := fmt.Sprintf(`
		<p>Dear User,</p>
		<p>Your One Time Password (OTP) is:</p>
		<h1 style="text-align: center; color: #27ae60; font-size: 40px; margin: 20px 0;">%s</h1>
		<p>It is valid for %d minutes. Do not share this OTP with anyone.</p>
	`, otp, config.AppConfig.OTPExpiryMinutes)

	return SendEmail([]string{email}, subject, getEmailTemplate("OTP Verification", body))
}

// MailNotifier satisfies the workflow's notifier interface with SMTP mail.
// Every trigger sends in the background; a failed mail never fails the
// request that raised it.
type MailNotifier struct{}

func (MailNotifier) ApplicationSubmitted(email string, app *models.RCApplication) {
	subject := "Ration Card Application Submitted Successfully"
	body := fmt.Sprintf(`
		<p>Dear Applicant,</p>
		<p>We have successfully received your ration card application. Here are your application details:</p>
		<div class="info-box">
			<p><strong>Application ID:</strong> %s</p>
			<p><strong>Status:</strong> Under Review</p>
			<p><strong>Total Family Members:</strong> %d</p>
			<p><strong>Card Type:</strong> %s</p>
			<p><strong>Location:</strong> %s, %s, %s, %s</p>
		</div>
		<p>Keep your application ID handy for future reference. Expected processing time: 15-30 days.</p>
	`, app.ApplicationID, app.TotalMembers, app.CardType,
		app.Village, app.TalukaTehsil, app.District, app.State)

	go SendEmail([]string{email}, subject, getEmailTemplate("Application Received", body))
}

func (MailNotifier) ApplicationApproved(email string, app *models.RCApplication, rcNo string) {
	subject := "Ration Card Application Approved"
	body := fmt.Sprintf(`
		<p>Dear Applicant,</p>
		<p>Congratulations! Your ration card application <strong>%s</strong> has been APPROVED.</p>
		<div class="info-box">
			<p><strong>Ration Card Number:</strong> %s</p>
			<p><strong>Card Type:</strong> %s</p>
		</div>
		<p>Your ration card is now active. You can collect rations from your assigned fair price shop.</p>
	`, app.ApplicationID, rcNo, app.CardType)

	go SendEmail([]string{email}, subject, getEmailTemplate("Application Approved", body))
}

func (MailNotifier) ApplicationRejected(email string, app *models.RCApplication) {
	subject := "Ration Card Application Update"
	body := fmt.Sprintf(`
		<p>Dear Applicant,</p>
		<p>We regret to inform you that your ration card application <strong>%s</strong> could not be approved.</p>
		<p>You may contact your local ration card office for details, or submit a fresh application with corrected information.</p>
	`, app.ApplicationID)

	go SendEmail([]string{email}, subject, getEmailTemplate("Application Rejected", body))
}

// SendGrievanceAckEmail acknowledges a grievance submission.
func SendGrievanceAckEmail(email, referenceID, category, description, contactNo string, docCount int) {
	subject := "Grievance Acknowledgment - JanSEVA Ration Portal"
	body := fmt.Sprintf(`
		<p>Dear Citizen,</p>
		<p>We have successfully received your grievance regarding <strong>%s</strong>.</p>
		<div class="info-box">
			<p><strong>Reference ID:</strong> %s</p>
			<p><strong>Description:</strong> %s</p>
			<p><strong>Contact No:</strong> %s</p>
			<p><strong>Documents Uploaded:</strong> %d file(s)</p>
		</div>
		<p>Our support team will review your concern and take action at the earliest. We aim to respond within 3-5 working days.</p>
	`, category, referenceID, description, contactNo, docCount)

	go SendEmail([]string{email}, subject, getEmailTemplate("Grievance Received", body))
}

// SendPendingReminderEmail tells an applicant their application is still
// under review past the expected window.
func SendPendingReminderEmail(email, applicationID string, days int) {
	subject := "Your Ration Card Application is Still Under Review"
	body := fmt.Sprintf(`
		<p>Dear Applicant,</p>
		<p>Your application <strong>%s</strong> has been under review for %d days.</p>
		<p>No action is required from your side. We apologise for the delay; the department is processing a high volume of applications.</p>
	`, applicationID, days)

	go SendEmail([]string{email}, subject, getEmailTemplate("Application Under Review", body))
}
