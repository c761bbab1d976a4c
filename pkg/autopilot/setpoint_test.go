package autopilot

import (
	"testing"

	"github.com/magic428/px4-offboard-interface/pkg/mavlink"
	"github.com/stretchr/testify/require"
)

func TestSetPositionReplacesMask(t *testing.T) {
	var sp Setpoint
	sp.SetVelocity(1, 2, 3)
	sp.SetPosition(10, 20, -5)

	require.Equal(t, UsePosition, sp.Mask)
	require.Equal(t, uint8(mavlink.FrameLocalNED), sp.Frame)
	require.Equal(t, float32(10), sp.X)
}

func TestMaskFlagsCombineWithOr(t *testing.T) {
	var sp Setpoint
	sp.SetVelocity(1, 0, 0)
	sp.SetYawRate(0.5)

	require.Equal(t, UseVelocity|UseYawRate, sp.Mask)
	require.Equal(t, float32(1), sp.Vx)
	require.Equal(t, float32(0.5), sp.YawRate)
}

func TestSetYawExtendsMask(t *testing.T) {
	var sp Setpoint
	sp.SetPosition(1, 1, -2)
	sp.SetYaw(1.57)

	require.Equal(t, UsePosition|UseYaw, sp.Mask)
}

func TestHoldSetpoint(t *testing.T) {
	sp := HoldSetpoint()

	require.Equal(t, UseVelocity|UseYawRate, sp.Mask)
	require.Zero(t, sp.Vx)
	require.Zero(t, sp.Vy)
	require.Zero(t, sp.Vz)
	require.Zero(t, sp.YawRate)
}

func TestTypeMaskTranslation(t *testing.T) {
	cases := []struct {
		name string
		sp   func() Setpoint
		want uint16
	}{
		{
			name: "position",
			sp: func() Setpoint {
				var sp Setpoint
				sp.SetPosition(1, 2, 3)
				return sp
			},
			want: mavlink.IgnoreAll &^ mavlink.IgnorePosition,
		},
		{
			name: "velocity and yaw rate",
			sp:   HoldSetpoint,
			want: mavlink.IgnoreAll &^ (mavlink.IgnoreVelocity | mavlink.IgnoreYawRate),
		},
		{
			name: "acceleration",
			sp: func() Setpoint {
				var sp Setpoint
				sp.SetAcceleration(0, 0, -1)
				return sp
			},
			want: mavlink.IgnoreAll &^ mavlink.IgnoreAcceleration,
		},
		{
			name: "land",
			sp: func() Setpoint {
				sp := HoldSetpoint()
				sp.SetLand()
				return sp
			},
			want: (mavlink.IgnoreAll &^ (mavlink.IgnoreVelocity | mavlink.IgnoreYawRate)) | mavlink.TypeMaskLand,
		},
		{
			name: "empty mask ignores everything",
			sp:   func() Setpoint { return Setpoint{} },
			want: mavlink.IgnoreAll,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.sp().typeMask())
		})
	}
}

func TestSetpointPayload(t *testing.T) {
	var sp Setpoint
	sp.SetPosition(1, 2, -3)
	sp.SetYaw(0.7)

	pl := sp.payload(1234, 1, 50)
	require.Equal(t, uint32(1234), pl.TimeBootMs)
	require.Equal(t, float32(1), pl.X)
	require.Equal(t, float32(-3), pl.Z)
	require.Equal(t, float32(0.7), pl.Yaw)
	require.Equal(t, uint8(1), pl.TargetSystem)
	require.Equal(t, uint8(50), pl.TargetComponent)
	require.Equal(t, uint8(mavlink.FrameLocalNED), pl.CoordinateFrame)
	require.Equal(t, mavlink.IgnoreAll&^(mavlink.IgnorePosition|mavlink.IgnoreYaw), pl.TypeMask)
}

func TestSetpointPayloadDefaultFrame(t *testing.T) {
	pl := Setpoint{}.payload(0, 1, 1)
	require.Equal(t, uint8(mavlink.FrameLocalNED), pl.CoordinateFrame)
}

func TestSetpointStoreReadAfterWrite(t *testing.T) {
	var st setpointStore

	var sp Setpoint
	sp.SetVelocity(3, 2, 1)
	sp.SetYawRate(-0.2)
	st.put(sp)

	got := st.get()
	require.Equal(t, sp, got, "readers must observe the full written value")
	require.False(t, st.wasSent())

	st.markSent()
	require.True(t, st.wasSent())

	st.put(sp)
	require.False(t, st.wasSent(), "replacing the setpoint clears the sent flag")
}

func TestSetpointStoreInstallYieldsToProducer(t *testing.T) {
	var st setpointStore

	var sp Setpoint
	sp.SetPosition(5, 5, -10)
	st.put(sp)

	st.install(HoldSetpoint())
	require.Equal(t, sp, st.get(), "install must not replace a producer value")

	var empty setpointStore
	empty.install(HoldSetpoint())
	require.Equal(t, HoldSetpoint(), empty.get())
}
