// internal/corpus/policies.go
package corpus

// policyStatements is the fixed set of policy texts indexed alongside
// product records. Order is stable: policy document ids depend on it.
var policyStatements = []string{
	`INVENTORY MANAGEMENT POLICY

Safety Stock Requirements:
- Class A items (high value): safety stock must be 20% of average demand plus a 2 week buffer
- Class B items (medium value): 10 days average demand plus a 20% buffer
- Class C items (low value): 5 days average demand plus a 10% buffer

Reorder Point Formula:
ROP = (Average Daily Demand x Lead Time) + Safety Stock

Stock Alert Levels:
- RED ALERT (below 20% of safety stock): emergency reorder required
- YELLOW WARNING (20-50%): expedite next order
- GREEN STATUS (above 50%): normal operations`,

	`SUPPLIER PERFORMANCE STANDARDS

Lead Time Requirements by Category:
- Haircare products: 10-15 days acceptable
- Skincare products: 12-18 days acceptable
- Cosmetics: 15-20 days acceptable

Penalty Structure for Delays:
- 1-5 days late: 2% invoice reduction
- 6-10 days late: 5% invoice reduction
- More than 10 days late: 10% reduction plus performance review

Quality Standards:
- Tier 1 suppliers: below 2% defect rate required
- Tier 2 suppliers: below 3% defect rate required
- Tier 3 suppliers: below 5% defect rate required`,

	`RISK MANAGEMENT FRAMEWORK

Risk Assessment Criteria:
- Stock risk: inventory below 10 units is HIGH risk
- Quality risk: defect rate above 5% is HIGH risk
- Supplier risk: lead time above 20 days is MEDIUM risk
- Logistics risk: shipping delay above 10 days is MEDIUM risk

Required Actions by Risk Level:
- HIGH: immediate action required within 24 hours
- MEDIUM: review within 1 week
- LOW: monitor during regular reviews`,
}
