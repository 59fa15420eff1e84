package assistant

// DefaultEntries is the built-in company knowledge table, in priority order.
func DefaultEntries() []KnowledgeEntry {
	return []KnowledgeEntry{
		{"holiday", "Company holidays include Republic Day (26 Jan), Independence Day (15 Aug), Gandhi Jayanti (2 Oct), Diwali, Holi, Eid, Christmas, and other regional festivals. Please check the HR portal for specific dates."},
		{"leave", "To request leave, submit a request through the HR portal at least 2 weeks in advance. Emergency leave should be reported to your manager and HR immediately via phone call."},
		{"benefits", "Company benefits include comprehensive health insurance (MediClaim), dental coverage, EPF, ESIC, gratuity, and paid time off. Annual health checkup provided. Visit the HR portal or email hr@techcorp.in for details."},
		{"it support", "For IT support, email it-support@techcorp.in or call ext. 5557. For urgent issues, contact the IT helpdesk on the 2nd floor. Working hours: 9 AM to 6 PM IST."},
		{"expense", "Submit expense reports through the finance portal within 7 days of travel/purchase. All receipts must be uploaded with GST details. Manager approval required within 48 hours."},
		{"payroll", "Salary is credited on the last working day of each month. TDS deductions apply. For salary queries, email payroll@techcorp.in or contact ext. 5555."},
		{"training", "Professional development opportunities are available through our learning portal. Annual training budget of ₹50,000 per employee. Certifications and conferences approved by manager."},
		{"meeting rooms", "Book meeting rooms through the Outlook calendar system or facilities portal. Conference rooms available: A1-A4 (4-6 persons), B1-B2 (10-15 persons), C1 (20+ persons). 24-hour advance notice required."},
		{"security", "For security concerns, contact security@techcorp.in or call the emergency line at ext. 9111. Biometric attendance mandatory. Visitor passes required at reception. CCTV monitoring active."},
		{"remote work", "Hybrid work model available. 3 days office, 2 days WFH for eligible positions. Manager approval required. Company laptop provided for WFH. VPN access mandatory."},
		{"supplies", "Office supplies can be ordered through the facilities portal or by contacting facilities@techcorp.in. Stationery available from admin desk on the 1st floor. Print cards with ₹500 monthly credit."},
		{"food", "Cafeteria on ground floor serves breakfast (8:30-10:30 AM) and lunch (12:30-2:30 PM). ₹200 per day meal allowance. Tea/coffee stations available on all floors."},
		{"transport", "Company bus service available from major metro stations. Pickup timing: 8:30 AM. Drop timing: 6:30 PM. Monthly transport pass: ₹2,000. Cab facility for late working (after 8 PM)."},
		{"pf", "Provident Fund (PF) contribution: 12% of basic salary by employee + 12% by employer. UAN activation mandatory. Withdrawal allowed for specific reasons as per EPF rules."},
		{"medical", "Annual health checkup provided at empaneled hospitals. Health insurance covers family (spouse + 2 children). ₹5 lakh coverage per person. Mediclaim card provided."},
	}
}

// Default returns a knowledge base built from DefaultEntries.
func Default() *KnowledgeBase {
	kb, err := NewKnowledgeBase(DefaultEntries(), DefaultFallback, FirstMatch)
	if err != nil {
		panic(err)
	}
	return kb
}
