package jobs

import "time"

func (j *StaleOrderReportJob) SetClock(now func() time.Time) {
	j.now = now
}
