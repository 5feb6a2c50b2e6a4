package seed

import (
	"time"

	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/airenas/revy/internal/pkg/status"
)

// User returns the mock user profile
func User() persistence.User {
	return persistence.User{Name: "محمد رضایی", Role: "ناظر", EmployeeID: "981234", Department: "فناوری اطلاعات"}
}

// Files returns mock files, newest first, now is the creation time of the newest one
func Files(now time.Time) []*persistence.FileRecord {
	day := 24 * time.Hour
	return []*persistence.FileRecord{
		{ID: "1", Name: "فایل_نمونه_۱.pdf", UploadDate: "۱۴۰۳/۰۴/۳۰", Type: "صورت جلسه", SubCollection: "مالی",
			Status: status.Pending, Duration: 320, Uploader: "علی",
			OriginalText:     "این متن استخراج شده اولیه برای فایل نمونه یک است.",
			EditedText:       "این متن ویرایش شده برای فایل نمونه یک است.",
			AudioSrc:         "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3",
			ExtractedPhrases: []string{"آنبوردینگ", "فرایند سازمانی", "انتقال دانش"}, Created: now},
		{ID: "2", Name: "گزارش ماهانه.docx", UploadDate: "۱۴۰۳/۰۴/۲۹", Type: "درس آموخته", SubCollection: "آموزش",
			Status: status.Processing, Duration: 450, Uploader: "سارا", Created: now.Add(-day)},
		{ID: "3", Name: "صورتجلسه با نام خیلی خیلی طولانی جهت تست نمایش.mp3", UploadDate: "۱۴۰۳/۰۴/۲۸",
			Type: "صورت جلسه", SubCollection: "فنی", Status: status.Approved, Duration: 600, Uploader: "محمد",
			OriginalText:     sampleText,
			EditedText:       "این متن ویرایش شده برای صورتجلسه طولانی است.",
			AudioSrc:         "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3",
			ExtractedPhrases: append([]string{}, samplePhrases...), Created: now.Add(-2 * day)},
		{ID: "4", Name: "پیش فاکتور.png", UploadDate: "۱۴۰۳/۰۴/۲۷", Type: "درس آموخته", SubCollection: "منابع انسانی",
			Status: status.Rejected, Duration: 180, Uploader: "رضا", Created: now.Add(-3 * day)},
		{ID: "5", Name: "جلسه_بررسی_بودجه.wav", UploadDate: "۱۴۰۳/۰۴/۲۶", Type: "صورت جلسه", SubCollection: "مالی",
			Status: status.Approved, Duration: 720, Uploader: "مریم", Created: now.Add(-4 * day)},
	}
}

var (
	sampleText    = "این متن استخراج شده اولیه برای صورتجلسه طولانی است."
	samplePhrases = []string{"جلسه فنی", "پروژه", "تایید نهایی"}
)

// SampleTranscript returns the transcript used for new uploads
func SampleTranscript() persistence.Transcript {
	return persistence.Transcript{Text: sampleText, Phrases: append([]string{}, samplePhrases...)}
}

// Terms returns mock dictionary terms
func Terms() []*persistence.DictionaryTerm {
	const noDesc = "توضیح درباره این عبارت بنویسید..."
	return []*persistence.DictionaryTerm{
		{ID: "1", Term: "آنبوردینگ", Description: "فرایند جذب و آموزش نیروهای جدید.", SubCollection: "منابع انسانی"},
		{ID: "2", Term: "فرایند سازمانی", Description: noDesc, SubCollection: "روابط عمومی"},
		{ID: "3", Term: "انتقال دانش", Description: noDesc, SubCollection: "فنی"},
		{ID: "4", Term: "مدیریت پروژه", Description: noDesc, SubCollection: "مالی"},
		{ID: "5", Term: "فرایند جذب", Description: noDesc, SubCollection: "منابع انسانی"},
		{ID: "6", Term: "داده‌کاوی", Description: noDesc, SubCollection: "فنی"},
		{ID: "7", Term: "ارتباطات داخلی", Description: noDesc, SubCollection: "روابط عمومی"},
		{ID: "8", Term: "ارزیابی عملکرد", Description: noDesc, SubCollection: "منابع انسانی"},
		{ID: "9", Term: "برنامه‌ریزی مالی", Description: noDesc, SubCollection: "مالی"},
		{ID: "10", Term: "اتوماسیون اداری", Description: noDesc, SubCollection: "فنی"},
	}
}
