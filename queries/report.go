package queries

import (
	"ClinicDesk/models"
	"ClinicDesk/services"
	"fmt"
	"strings"
	"time"
)

type reportText struct {
	title, rule                                   string
	sessions, total, confirmed, completed, cancel string
	revenue, collected, pending, paid, unpaid     string
	teeth, healthy, treated, problem              string
	patients, totalPatients                       string
	date                                          string
	dateLayout                                    string
}

var reportTexts = map[models.Language]reportText{
	models.Arabic: {
		title: "تقرير شامل للعيادة", rule: "==================",
		sessions: "إحصائيات الجلسات:", total: "إجمالي الجلسات", confirmed: "الجلسات المؤكدة",
		completed: "الجلسات المكتملة", cancel: "الجلسات الملغية",
		revenue: "إحصائيات الإيرادات:", collected: "إجمالي الإيرادات المحصلة", pending: "الإيرادات المعلقة",
		paid: "الفواتير المدفوعة", unpaid: "الفواتير غير المدفوعة",
		teeth: "إحصائيات الأسنان:", healthy: "أسنان سليمة", treated: "أسنان معالجة", problem: "أسنان مصابة",
		patients: "إحصائيات المرضى:", totalPatients: "إجمالي المرضى",
		date: "تاريخ التقرير", dateLayout: "2006-01-02",
	},
	models.English: {
		title: "Comprehensive Clinic Report", rule: "===========================",
		sessions: "Session Statistics:", total: "Total Sessions", confirmed: "Confirmed Sessions",
		completed: "Completed Sessions", cancel: "Cancelled Sessions",
		revenue: "Revenue Statistics:", collected: "Total Revenue Collected", pending: "Pending Revenue",
		paid: "Paid Invoices", unpaid: "Unpaid Invoices",
		teeth: "Teeth Statistics:", healthy: "Healthy Teeth", treated: "Treated Teeth", problem: "Problem Teeth",
		patients: "Patient Statistics:", totalPatients: "Total Patients",
		date: "Report Date", dateLayout: "1/2/2006",
	},
}

// Report renders the plain-text clinic report in lang. Teeth are counted on
// the general chart.
func Report(snap services.Snapshot, lang models.Language, now time.Time) string {
	text, ok := reportTexts[lang]
	if !ok {
		text = reportTexts[models.Arabic]
	}
	stats := Dashboard(snap, services.GeneralChart())

	byStatus := map[models.AppointmentStatus]int{}
	byPayment := map[models.PaymentStatus]int{}
	for _, apt := range snap.Appointments {
		byStatus[apt.Status]++
		byPayment[apt.PaymentStatus]++
	}

	var b strings.Builder
	line := func(label string, value interface{}) {
		fmt.Fprintf(&b, "- %s: %v\n", label, value)
	}

	fmt.Fprintf(&b, "%s\n%s\n\n", text.title, text.rule)

	b.WriteString(text.sessions + "\n")
	line(text.total, len(snap.Appointments))
	line(text.confirmed, byStatus[models.StatusConfirmed])
	line(text.completed, byStatus[models.StatusCompleted])
	line(text.cancel, byStatus[models.StatusCancelled])
	b.WriteString("\n")

	b.WriteString(text.revenue + "\n")
	line(text.collected, fmt.Sprintf("%.2f", stats.TotalRevenue))
	line(text.pending, fmt.Sprintf("%.2f", stats.PendingRevenue))
	line(text.paid, byPayment[models.PaymentPaid])
	line(text.unpaid, byPayment[models.PaymentUnpaid])
	b.WriteString("\n")

	b.WriteString(text.teeth + "\n")
	line(text.healthy, stats.HealthyTeeth)
	line(text.treated, stats.TreatedTeeth)
	line(text.problem, stats.ProblemTeeth)
	b.WriteString("\n")

	b.WriteString(text.patients + "\n")
	line(text.totalPatients, len(snap.Patients))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s: %s\n", text.date, now.Format(text.dateLayout))
	return b.String()
}
