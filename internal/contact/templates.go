package contact

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// The two email bodies mirror the portfolio site styling. The guest
// message is Vietnamese like the rest of the site; the admin subject
// prefix keeps notifications easy to filter in the inbox.

var adminTemplate = template.Must(template.New("admin_notification").Parse(`<html>
  <head>
    <meta charset="UTF-8">
    <style>
      body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; }
      .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
      .header h1 { margin: 0; font-size: 24px; }
      .content { background: #f9fafb; padding: 30px; }
      .info-box { background: white; border-left: 4px solid #667eea; padding: 15px; margin: 15px 0; border-radius: 4px; }
      .info-box strong { color: #667eea; }
      .message-box { background: white; border: 1px solid #e5e7eb; padding: 20px; margin: 20px 0; border-radius: 4px; white-space: pre-wrap; word-wrap: break-word; }
      .footer { background: #f3f4f6; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; border-radius: 0 0 8px 8px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>📬 Tin nhắn mới từ Portfolio</h1>
      </div>
      <div class="content">
        <p>Bạn vừa nhận được một tin nhắn từ liên hệ form:</p>

        <div class="info-box">
          <p><strong>👤 Tên:</strong> {{.Name}}</p>
          <p><strong>📧 Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
          {{if .Phone}}<p><strong>📱 Điện thoại:</strong> {{.Phone}}</p>{{end}}
        </div>

        <p><strong>💬 Nội dung tin nhắn:</strong></p>
        <div class="message-box">{{.Message}}</div>

        <p style="color: #6b7280; font-size: 14px; margin-top: 20px;">
          💡 Hãy phản hồi khách hàng sớm nhất có thể để tạo ấn tượng tốt.
        </p>
      </div>
      <div class="footer">
        <p>© 2026 Portfolio Contact Form • Automated Message</p>
      </div>
    </div>
  </body>
</html>`))

var guestTemplate = template.Must(template.New("guest_confirmation").Parse(`<html>
  <head>
    <meta charset="UTF-8">
    <style>
      body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; }
      .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
      .header h1 { margin: 0; font-size: 24px; }
      .content { background: #f9fafb; padding: 30px; }
      .greeting { font-size: 16px; margin-bottom: 20px; }
      .highlight-box { background: white; border-left: 4px solid #10b981; padding: 20px; margin: 20px 0; border-radius: 4px; }
      .highlight-box h3 { color: #10b981; margin: 0 0 10px 0; }
      .footer { background: #f3f4f6; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; border-radius: 0 0 8px 8px; }
      .social-links { margin: 20px 0; text-align: center; }
      .social-links a { margin: 0 10px; color: #667eea; text-decoration: none; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>✅ Cảm ơn bạn!</h1>
      </div>
      <div class="content">
        <p class="greeting">Xin chào <strong>{{.Name}}</strong>,</p>

        <p>Cảm ơn bạn rất nhiều vì đã gửi tin nhắn cho tôi. Tôi đã nhận được tin nhắn của bạn và sẽ đọc kỹ nó.</p>

        <div class="highlight-box">
          <h3>📋 Tiếp theo là gì?</h3>
          <p>Tôi sẽ phản hồi lại tin nhắn của bạn trong <strong>1-2 ngày làm việc</strong>. Nếu cần trả lời gấp, bạn có thể liên hệ trực tiếp với tôi qua các kênh khác.</p>
        </div>

        <p>Mình rất vui nhận được tin từ bạn và mong được trao đổi thêm!</p>

        <div class="social-links">
          <p style="margin-bottom: 10px; color: #6b7280;"><strong>Kết nối với tôi:</strong></p>
          <a href="https://github.com/phungtienthanh">GitHub</a>
          <a href="https://linkedin.com">LinkedIn</a>
          <a href="mailto:phungtienthanh2004@gmail.com">Email</a>
        </div>

        <p style="color: #6b7280; font-size: 14px; margin-top: 25px; border-top: 1px solid #e5e7eb; padding-top: 20px;">
          Trân trọng,<br>
          <strong>Phùng Tiến Thành</strong>
        </p>
      </div>
      <div class="footer">
        <p>© 2026 Portfolio • <a href="https://phungtienthanh.com" style="color: #667eea; text-decoration: none;">phungtienthanh.com</a></p>
      </div>
    </div>
  </body>
</html>`))

type adminData struct {
	Name    string
	Email   string
	Phone   string
	Message template.HTML
}

type guestData struct {
	Name string
}

// AdminNotification renders the email sent to the site owner for a new
// submission. message must already be escaped by EscapeHTML; angle
// brackets are stripped here again so a raw message can never smuggle
// markup into the body.
func AdminNotification(name, email, message, phone string) Email {
	message = strings.ReplaceAll(message, "<", "&lt;")
	message = strings.ReplaceAll(message, ">", "&gt;")

	var buf bytes.Buffer
	if err := adminTemplate.Execute(&buf, adminData{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: template.HTML(message),
	}); err != nil {
		return Email{}
	}

	return Email{
		Subject: fmt.Sprintf("[NEW MESSAGE] Liên hệ từ %s", name),
		HTML:    buf.String(),
	}
}

// GuestConfirmation renders the thank-you email sent back to the
// submitter.
func GuestConfirmation(name string) Email {
	var buf bytes.Buffer
	if err := guestTemplate.Execute(&buf, guestData{Name: name}); err != nil {
		return Email{}
	}

	return Email{
		Subject: "✅ Chúng tôi đã nhận được tin nhắn của bạn",
		HTML:    buf.String(),
	}
}
