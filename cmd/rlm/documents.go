package main

// sample corpus for the demo, standing in for a store far too large to
// place in a model's context window
const sampleDocuments = `
=== DOCUMENT 1: Company Financials Q3 2025 ===
Revenue: $45.2M (up 23% YoY)
Net Income: $8.1M
Key Products: CloudSync Pro, DataMesh Enterprise
CEO: Sarah Chen
CFO: Marcus Williams
Employees: 342

=== DOCUMENT 2: Product Launch Memo ===
Date: October 15, 2025
Product: CloudSync Pro v3.0
Features: Real-time collaboration, AI-powered insights
Target Market: Enterprise customers (500+ employees)
Launch Date: November 1, 2025
Pricing: $99/user/month

=== DOCUMENT 3: Board Meeting Notes ===
Date: September 28, 2025
Attendees: Sarah Chen (CEO), Marcus Williams (CFO), Board Members
Discussion Points:
- Q3 performance exceeded expectations
- Approved $15M R&D budget for 2026
- New hire target: 50 engineers by Q2 2026
- Acquisition target: DataFlow Inc (pending due diligence)
Action Items:
- CFO to prepare acquisition financial model
- CEO to finalize DataFlow negotiations

=== DOCUMENT 4: Customer Feedback Summary ===
NPS Score: 72 (up from 65)
Top Requests:
1. Mobile app (requested by 45% of users)
2. Better API documentation (38%)
3. Slack integration (31%)
Churn Rate: 2.1% (industry avg: 5.2%)

=== DOCUMENT 5: Competitive Analysis ===
Main Competitors: SyncCorp, CloudBase, DataStream
Our Advantages: Price (20% lower), AI features, Customer support
Weaknesses: No mobile app, Limited integrations
Market Share: 12% (up from 8% last year)
Target: 20% market share by 2027
`
